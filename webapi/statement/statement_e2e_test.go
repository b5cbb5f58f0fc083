package statement_test

import (
	"sync"
	"testing"

	"github.com/amirasaad/ledger/pkg/domain/statement"
	"github.com/amirasaad/ledger/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type StatementE2ETestSuite struct {
	testutils.E2ETestSuite
}

func (s *StatementE2ETestSuite) TestLedgerFlow() {
	u := s.CreateTestUser()
	token := s.LoginUser(u)

	resp := s.MakeRequest(fiber.MethodPost, "/api/v1/statements/deposit", `{"amount":"1000.25","description":"rent"}`, token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var deposit statement.Statement
	s.DecodeResponse(resp, &deposit)

	resp = s.MakeRequest(fiber.MethodPost, "/api/v1/statements/withdraw", `{"amount":"500"}`, token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	resp = s.MakeRequest(fiber.MethodPost, "/api/v1/statements/withdraw", `{"amount":"600"}`, token)
	s.Equal(fiber.StatusUnprocessableEntity, resp.StatusCode)
	_ = resp.Body.Close()

	resp = s.MakeRequest(fiber.MethodGet, "/api/v1/statements/balance", "", token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var b statement.Balance
	s.DecodeResponse(resp, &b)
	s.True(decimal.RequireFromString("500.25").Equal(b.Amount), "balance %s", b.Amount)
	s.Require().Len(b.Statements, 2)
	s.Equal(deposit.ID, b.Statements[0].ID)

	resp = s.MakeRequest(fiber.MethodGet, "/api/v1/statements/"+deposit.ID.String(), "", token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var got statement.Statement
	s.DecodeResponse(resp, &got)
	s.True(decimal.RequireFromString("1000.25").Equal(got.Amount))
	s.Equal("rent", got.Description)
}

func (s *StatementE2ETestSuite) TestConcurrentWithdrawalsAreSerialized() {
	u := s.CreateTestUser()
	token := s.LoginUser(u)

	resp := s.MakeRequest(fiber.MethodPost, "/api/v1/statements/deposit", `{"amount":"100"}`, token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	const workers = 6
	statuses := make(chan int, workers)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := s.MakeRequest(fiber.MethodPost, "/api/v1/statements/withdraw", `{"amount":"25"}`, token)
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
	s.Equal(4, counts[fiber.StatusCreated])
	s.Equal(workers-4, counts[fiber.StatusUnprocessableEntity])

	var rows int64
	s.Require().NoError(s.DB().Table("statements").Where("user_id = ?", u.ID).Count(&rows).Error)
	s.EqualValues(5, rows)
}

func TestStatementE2ETestSuite(t *testing.T) {
	suite.Run(t, new(StatementE2ETestSuite))
}
