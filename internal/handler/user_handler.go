package handler

import (
	"errors"
	"net/http"
	"strconv"

	"app/internal/usecase"
	auth "app/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

// 購入者の登録/ログイン/管理のHTTP
type UserHandler struct {
	registerUC *auth.RegisterUserUsecase
	loginUC    *auth.LoginUserUsecase
	userUC     *usecase.UserUsecase
}

// DI
func NewUserHandler(
	registerUC *auth.RegisterUserUsecase,
	loginUC *auth.LoginUserUsecase,
	userUC *usecase.UserUsecase,
) *UserHandler {
	return &UserHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		userUC:     userUC,
	}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/register/", h.register)
	e.POST("/login/", h.login)
	e.GET("/users/", h.list)
	e.GET("/users/:user_id", h.detail)
	e.DELETE("/users/:user_id", h.remove)
}

func (h *UserHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	created, err := h.registerUC.Execute(c.Request().Context(), auth.RegisterInput{
		Name:     req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeAuthError(c, err, "user already exists", "user not found")
	}

	return c.JSON(http.StatusCreated, usecase.UserView{
		ID:       created.ID,
		Username: created.Username,
		Email:    created.Email,
	})
}

func (h *UserHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Name:     req.Username,
		Password: req.Password,
	})
	if err != nil {
		return writeAuthError(c, err, "user already exists", "user not found")
	}

	return c.JSON(http.StatusOK, LoginResponse{
		ID:          out.User.ID,
		Username:    out.User.Username,
		Email:       out.User.Email,
		AccessToken: out.AccessToken,
	})
}

func (h *UserHandler) list(c echo.Context) error {
	out, err := h.userUC.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) detail(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
	}

	out, err := h.userUC.Get(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) remove(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
	}

	out, err := h.userUC.Delete(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// authパッケージのエラーをステータスコードへ変換する。
// conflictMsg/notFoundMsg は対象（user/admin）により文言が変わる。
func writeAuthError(c echo.Context, err error, conflictMsg string, notFoundMsg string) error {
	switch {
	case errors.Is(err, auth.ErrAlreadyExists):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: conflictMsg})
	case errors.Is(err, auth.ErrPrincipalNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: notFoundMsg})
	case errors.Is(err, auth.ErrIncorrectPassword):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "incorrect password"})
	case errors.Is(err, auth.ErrInvalidEmailFormat),
		errors.Is(err, auth.ErrEmptyUsername),
		errors.Is(err, auth.ErrEmptyPassword):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
