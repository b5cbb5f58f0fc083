package statement_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/amirasaad/ledger/pkg/domain/statement"
	"github.com/amirasaad/ledger/pkg/domain/user"
	"github.com/amirasaad/ledger/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type StatementTestSuite struct {
	testutils.MemoryTestSuite
	testUser *user.User
	token    string
}

func (s *StatementTestSuite) SetupTest() {
	s.MemoryTestSuite.SetupTest()
	s.testUser = s.CreateTestUser()
	s.token = s.LoginUser(s.testUser)
}

func (s *StatementTestSuite) operation(kind, body string) *http.Response {
	return s.MakeRequest(fiber.MethodPost, "/api/v1/statements/"+kind, body, s.token)
}

func (s *StatementTestSuite) balance() statement.Balance {
	resp := s.MakeRequest(fiber.MethodGet, "/api/v1/statements/balance", "", s.token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var b statement.Balance
	s.DecodeResponse(resp, &b)
	return b
}

func (s *StatementTestSuite) TestDeposit() {
	resp := s.operation("deposit", `{"amount":"1300","description":"salary"}`)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	var created statement.Statement
	s.DecodeResponse(resp, &created)
	s.Equal(s.testUser.ID, created.UserID)
	s.Equal(statement.Deposit, created.Type)
	s.Equal("salary", created.Description)
	s.True(decimal.NewFromInt(1300).Equal(created.Amount))

	b := s.balance()
	s.True(decimal.NewFromInt(1300).Equal(b.Amount))
	s.Len(b.Statements, 1)
}

func (s *StatementTestSuite) TestOperationVariants() {
	s.Require().Equal(fiber.StatusCreated, s.operation("deposit", `{"amount":100}`).StatusCode)

	testCases := []struct {
		desc       string
		kind       string
		body       string
		wantStatus int
	}{
		{"numeric amount", "deposit", `{"amount":12.5}`, fiber.StatusCreated},
		{"zero amount", "deposit", `{"amount":"0"}`, fiber.StatusCreated},
		{"negative amount", "deposit", `{"amount":"-1"}`, fiber.StatusBadRequest},
		{"missing amount", "deposit", `{"description":"x"}`, fiber.StatusBadRequest},
		{"non numeric amount", "deposit", `{"amount":"abc"}`, fiber.StatusBadRequest},
		{"insufficient funds", "withdraw", `{"amount":"1000"}`, fiber.StatusUnprocessableEntity},
		{"withdraw within balance", "withdraw", `{"amount":"50"}`, fiber.StatusCreated},
	}
	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.operation(tc.kind, tc.body)
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(tc.wantStatus, resp.StatusCode)
		})
	}

	b := s.balance()
	s.True(decimal.RequireFromString("62.5").Equal(b.Amount), "balance %s", b.Amount)
}

func (s *StatementTestSuite) TestWithdrawWholeBalance() {
	s.Require().Equal(fiber.StatusCreated, s.operation("deposit", `{"amount":"700"}`).StatusCode)
	s.Require().Equal(fiber.StatusCreated, s.operation("withdraw", `{"amount":"700"}`).StatusCode)
	s.True(s.balance().Amount.IsZero())
}

func (s *StatementTestSuite) TestConcurrentWithdrawals() {
	s.Require().Equal(fiber.StatusCreated, s.operation("deposit", `{"amount":"90"}`).StatusCode)

	const workers = 8
	statuses := make(chan int, workers)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := s.operation("withdraw", `{"amount":"30"}`)
			_ = resp.Body.Close()
			statuses <- resp.StatusCode
		}()
	}
	wg.Wait()
	close(statuses)

	counts := map[int]int{}
	for st := range statuses {
		counts[st]++
	}
	s.Equal(3, counts[fiber.StatusCreated])
	s.Equal(workers-3, counts[fiber.StatusUnprocessableEntity])
	s.True(s.balance().Amount.IsZero())
}

func (s *StatementTestSuite) TestGetStatementOperation() {
	resp := s.operation("deposit", `{"amount":"5000"}`)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var created statement.Statement
	s.DecodeResponse(resp, &created)

	other := s.CreateTestUser()
	otherToken := s.LoginUser(other)

	testCases := []struct {
		desc       string
		id         string
		token      string
		wantStatus int
	}{
		{"owner", created.ID.String(), s.token, fiber.StatusOK},
		{"other user", created.ID.String(), otherToken, fiber.StatusNotFound},
		{"unknown statement", uuid.NewString(), s.token, fiber.StatusNotFound},
		{"malformed id", "not-a-uuid", s.token, fiber.StatusNotFound},
		{"no token", created.ID.String(), "", fiber.StatusUnauthorized},
	}
	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.MakeRequest(fiber.MethodGet, "/api/v1/statements/"+tc.id, "", tc.token)
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(tc.wantStatus, resp.StatusCode)
		})
	}
}

func (s *StatementTestSuite) TestBalanceShape() {
	resp := s.MakeRequest(fiber.MethodGet, "/api/v1/statements/balance", "", s.token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var raw map[string]any
	s.DecodeResponse(resp, &raw)
	s.Contains(raw, "statement")
	s.Contains(raw, "balance")
	s.Equal([]any{}, raw["statement"])
}

func (s *StatementTestSuite) TestTokenForUnknownUser() {
	testCases := []struct {
		desc   string
		userID string
	}{
		{"nil user id", uuid.Nil.String()},
		{"user that never registered", uuid.NewString()},
	}
	routes := []struct {
		method, path, body string
	}{
		{fiber.MethodGet, "/api/v1/statements/balance", ""},
		{fiber.MethodPost, "/api/v1/statements/deposit", `{"amount":"10"}`},
		{fiber.MethodPost, "/api/v1/statements/withdraw", `{"amount":"10"}`},
		{fiber.MethodGet, "/api/v1/statements/" + uuid.NewString(), ""},
		{fiber.MethodGet, "/api/v1/profile", ""},
	}
	for _, tc := range testCases {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": tc.userID,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte(s.Config().Auth.Jwt.Secret))
		s.Require().NoError(err)

		for _, r := range routes {
			s.Run(tc.desc+" "+r.method+" "+r.path, func() {
				resp := s.MakeRequest(r.method, r.path, r.body, signed)
				s.Equal(fiber.StatusNotFound, resp.StatusCode)
				pd := s.DecodeProblem(resp)
				s.Equal(fiber.StatusNotFound, pd.Status)
				s.Contains(pd.Detail, user.ErrUserNotFound.Error())
			})
		}
	}
}

func TestStatementTestSuite(t *testing.T) {
	suite.Run(t, new(StatementTestSuite))
}
