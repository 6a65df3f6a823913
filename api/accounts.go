package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/starmind/account-relay/api/apistrings"
	models "github.com/starmind/account-relay/api/models"
	basemodels "github.com/starmind/account-relay/models"
	"github.com/starmind/account-relay/providers"
	"github.com/starmind/account-relay/providers/brokerage"
)

type Accounts struct {
	server    *Server
	brokerage *brokerage.MatchTradeProvider
}

func (a Accounts) router(server *Server) {
	a.server = server

	p, ok := server.provider.GetProvider(providers.MatchTrade)
	if !ok {
		panic("brokerage provider is not registered")
	}
	a.brokerage = p.(*brokerage.MatchTradeProvider)

	serverGroup := server.router.Group("/api/accounts")
	serverGroup.POST("simple", a.createSimpleAccount)
	serverGroup.OPTIONS("simple", a.preflight)
}

// Browsers probe the create route with OPTIONS before a cross-origin POST;
// the stub answer is the same regardless of body.
func (a *Accounts) preflight(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// createSimpleAccount validates the inbound request, maps it onto the broker
// payload and relays the normalized outcome back to the caller.
func (a *Accounts) createSimpleAccount(ctx *gin.Context) {
	body, err := ctx.GetRawData()
	if err != nil {
		a.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.ContentTypeJSON))
		return
	}

	// The body must be a JSON object; anything else never reaches validation
	var fields map[string]interface{}
	if err := json.Unmarshal(body, &fields); err != nil {
		a.server.logger.Log(logrus.WarnLevel, "Request is not JSON")
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.ContentTypeJSON))
		return
	}

	if len(fields) == 0 {
		a.server.logger.Log(logrus.WarnLevel, "No JSON data received")
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.NoJSONData))
		return
	}

	request := new(models.SimpleAccountRequest)
	if err := json.Unmarshal(body, request); err != nil {
		a.server.logger.Log(logrus.WarnLevel, err.Error())
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.ContentTypeJSON))
		return
	}

	a.server.logger.WithFields(logrus.Fields{"email": request.Email}).Info("Processing account creation")

	if missing := request.MissingFields(); len(missing) > 0 {
		a.server.logger.WithFields(logrus.Fields{"missing": missing}).Warn("Missing required fields")
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.MissingFieldsPrefix+strings.Join(missing, ", ")))
		return
	}

	payload := request.ToBrokerPayload(a.brokerage.DefaultOffer())

	result := a.brokerage.CreateAccount(ctx.Request.Context(), payload)
	if result.Success {
		a.server.logger.Info("Account created successfully")
	} else {
		a.server.logger.WithFields(logrus.Fields{"reason": result.Error, "message": result.Message}).Error("Account creation failed")
	}

	ctx.JSON(result.HTTPStatus(), result)
}
