// Package statement exposes the ledger operations over HTTP.
package statement

import (
	"fmt"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/statement"
	"github.com/amirasaad/ledger/pkg/domain/user"
	"github.com/amirasaad/ledger/pkg/middleware"
	authsvc "github.com/amirasaad/ledger/pkg/service/auth"
	stmtsvc "github.com/amirasaad/ledger/pkg/service/statement"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func Routes(
	r fiber.Router,
	stmtSvc *stmtsvc.Service,
	authSvc *authsvc.Service,
	cfg *config.App,
) {
	g := r.Group("/statements", middleware.JwtProtected(cfg.Auth.Jwt))
	g.Get("/balance", GetBalance(stmtSvc, authSvc))
	g.Post("/deposit", CreateStatement(stmtSvc, authSvc, statement.Deposit))
	g.Post("/withdraw", CreateStatement(stmtSvc, authSvc, statement.Withdraw))
	g.Get("/:statement_id", GetStatementOperation(stmtSvc, authSvc))
}

// currentUserID reads the user id from the token stored by JwtProtected.
func currentUserID(c *fiber.Ctx, authSvc *authsvc.Service) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: missing user context", user.ErrUserUnauthorized)
	}
	userID, err := authSvc.GetCurrentUserID(token)
	if err != nil {
		log.Errorf("Failed to parse user ID from token: %v", err)
		return uuid.Nil, err
	}
	return userID, nil
}

// GetBalance returns every statement of the user and their balance.
// @Summary Get balance
// @Description List the user's statements, oldest first, with the resulting balance
// @Tags statements
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /statements/balance [get]
// @Security Bearer
func GetBalance(
	stmtSvc *stmtsvc.Service,
	authSvc *authsvc.Service,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		balance, err := stmtSvc.GetBalance(c.UserContext(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't compute balance", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Balance fetched", balance)
	}
}

// CreateStatement records a deposit or a withdrawal depending on opType.
// @Summary Deposit or withdraw
// @Description Record a deposit or withdrawal for the authenticated user
// @Tags statements
// @Accept json
// @Produce json
// @Param request body OperationRequest true "Amount and description"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /statements/deposit [post]
// @Router /statements/withdraw [post]
// @Security Bearer
func CreateStatement(
	stmtSvc *stmtsvc.Service,
	authSvc *authsvc.Service,
	opType statement.OperationType,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		input, err := common.BindAndValidate[OperationRequest](c)
		if input == nil {
			return err // error response already written
		}
		created, err := stmtSvc.CreateStatement(c.UserContext(), stmtsvc.CreateStatementInput{
			UserID:      userID,
			Type:        opType,
			Amount:      *input.Amount,
			Description: input.Description,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create "+string(opType), err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Statement created", created)
	}
}

// GetStatementOperation returns a single statement of the user.
// @Summary Get statement
// @Description Return one statement if it belongs to the authenticated user
// @Tags statements
// @Produce json
// @Param statement_id path string true "Statement ID"
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /statements/{statement_id} [get]
// @Security Bearer
func GetStatementOperation(
	stmtSvc *stmtsvc.Service,
	authSvc *authsvc.Service,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		statementID, err := uuid.Parse(c.Params("statement_id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Statement not found", statement.ErrStatementNotFound)
		}
		stmt, err := stmtSvc.GetStatementOperation(c.UserContext(), userID, statementID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Statement not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Statement found", stmt)
	}
}
