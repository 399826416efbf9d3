package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/joinboard/backend/api/transport"
	"github.com/joinboard/backend/pkg/httpcontext"
	authUC "github.com/joinboard/backend/usecase/auth"
)

type AuthHandler struct {
	baseHandler
	uc *authUC.UseCase
}

func NewAuthHandler(uc *authUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Register a new account (or fetch the guest account)
// @Tags auth
// @Router /registration/ [post]
func (h *AuthHandler) Register(ctx *fasthttp.RequestCtx) {
	var req transport.RegistrationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.Failure(nil, "invalid payload"))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	account, created, err := h.uc.Register(stdCtx, authUC.RegistrationInput{
		Username:         req.Username,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Password:         req.Password,
		RepeatedPassword: req.RepeatedPassword,
	})
	if err != nil {
		h.respondError(ctx, err, "something went wrong while creating your account, please try again")
		return
	}

	if created {
		h.respondSuccess(ctx, http.StatusCreated, account, "account successfully created")
		return
	}
	h.respondSuccess(ctx, http.StatusOK, account, "guest account ready")
}

// @Summary Log in with username, email and password
// @Tags auth
// @Router /login/ [post]
func (h *AuthHandler) Login(ctx *fasthttp.RequestCtx) {
	var req transport.LoginRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.Failure(nil, "invalid payload"))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	account, err := h.uc.Login(stdCtx, req.Username, req.Email, req.Password)
	if err != nil {
		h.respondError(ctx, err, "login failed")
		return
	}
	h.respondSuccess(ctx, http.StatusOK, account, "user successfully logged in")
}
