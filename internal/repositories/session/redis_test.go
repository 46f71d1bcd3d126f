package session_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/combat-companion/internal/errors"
	"github.com/KirkDiggler/combat-companion/internal/pkg/clock"
	"github.com/KirkDiggler/combat-companion/internal/repositories/session"
)

type RedisErrorsTestSuite struct {
	suite.Suite
	mock redismock.ClientMock
	repo session.Repository
	ctx  context.Context
}

func TestRedisErrorsSuite(t *testing.T) {
	suite.Run(t, new(RedisErrorsTestSuite))
}

func (s *RedisErrorsTestSuite) SetupTest() {
	client, mock := redismock.NewClientMock()
	s.mock = mock
	s.ctx = context.Background()

	repo, err := session.NewRedis(&session.RedisConfig{
		Client: client,
		Clock:  clock.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisErrorsTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *RedisErrorsTestSuite) TestNewRedisValidation() {
	_, err := session.NewRedis(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = session.NewRedis(&session.RedisConfig{})
	s.Require().Error(err)
	s.Contains(err.Error(), "redis client is required")
}

func (s *RedisErrorsTestSuite) TestGetAllError() {
	s.mock.ExpectHGetAll("combat_session:abc").SetErr(stderrors.New("connection refused"))

	_, err := s.repo.Get(s.ctx, session.GetInput{SessionID: "abc"})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to get session from Redis")
}

func (s *RedisErrorsTestSuite) TestGetSomeKeys() {
	s.mock.ExpectHMGet("combat_session:abc", "max_hp", "api_key").SetVal([]interface{}{"12", nil})

	out, err := s.repo.Get(s.ctx, session.GetInput{
		SessionID: "abc",
		Keys:      []session.Key{session.KeyMaxHP, session.KeyAPIKey},
	})
	s.Require().NoError(err)
	s.Equal(session.Values{session.KeyMaxHP: "12"}, out.Values)
}

func (s *RedisErrorsTestSuite) TestSetWritesHashAndTTL() {
	s.mock.ExpectTxPipeline()
	s.mock.ExpectHSet("combat_session:abc", map[string]interface{}{"situation": "ambush"}).SetVal(1)
	s.mock.ExpectExpire("combat_session:abc", session.DefaultTTL).SetVal(true)
	s.mock.ExpectTxPipelineExec()

	out, err := s.repo.Set(s.ctx, session.SetInput{
		SessionID: "abc",
		Values:    session.Values{session.KeySituation: "ambush"},
	})
	s.Require().NoError(err)
	s.Equal(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), out.ExpiresAt)
}

func (s *RedisErrorsTestSuite) TestClearError() {
	s.mock.ExpectDel("combat_session:abc").SetErr(stderrors.New("readonly"))

	_, err := s.repo.Clear(s.ctx, session.ClearInput{SessionID: "abc"})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to clear session in Redis")
}
