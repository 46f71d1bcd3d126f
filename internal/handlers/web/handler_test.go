package web_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/combat-companion/internal/combat"
	"github.com/KirkDiggler/combat-companion/internal/errors"
	"github.com/KirkDiggler/combat-companion/internal/handlers/web"
	"github.com/KirkDiggler/combat-companion/internal/orchestrators/dashboard"
	dashboardmock "github.com/KirkDiggler/combat-companion/internal/orchestrators/dashboard/mock"
	"github.com/KirkDiggler/combat-companion/internal/orchestrators/loader"
	"github.com/KirkDiggler/combat-companion/internal/pkg/idgen"
	"github.com/KirkDiggler/combat-companion/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockDashboard *dashboardmock.MockService
	router        *gin.Engine
	sessionID     string
}

func TestHandlerSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDashboard = dashboardmock.NewMockService(s.ctrl)

	h, err := web.New(&web.Config{
		Dashboard:          s.mockDashboard,
		DefaultCharacterID: testutils.CharacterID,
	})
	s.Require().NoError(err)
	s.router = h.Router()
	s.sessionID = idgen.NewUUID(web.DefaultSessionPrefix).Generate()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(req *http.Request) *httptest.ResponseRecorder {
	req.AddCookie(&http.Cookie{Name: web.DefaultSessionCookie, Value: s.sessionID})
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req)
}

func (s *HandlerTestSuite) postJSON(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return s.do(req)
}

func (s *HandlerTestSuite) expectFlash(level dashboard.FlashLevel, message string) {
	s.mockDashboard.EXPECT().
		SetFlash(gomock.Any(), &dashboard.SetFlashInput{
			SessionID: s.sessionID,
			Flash:     dashboard.Flash{Level: level, Message: message},
		}).
		Return(&dashboard.SetFlashOutput{}, nil)
}

func (s *HandlerTestSuite) assertRedirect(rec *httptest.ResponseRecorder) {
	s.Equal(http.StatusSeeOther, rec.Code)
	s.Equal("/", rec.Header().Get("Location"))
}

func (s *HandlerTestSuite) rogueView() *dashboard.View {
	doc, err := loader.Normalize([]byte(testutils.RogueCharacterJSON))
	s.Require().NoError(err)
	sheet := &doc.Character
	vitality := combat.ComputeVitality(sheet, nil)
	return &dashboard.View{
		Loaded:   true,
		Name:     sheet.Name,
		Vitality: &vitality,
		Options:  combat.Classify(sheet),
		Flash:    &dashboard.Flash{Level: dashboard.FlashSuccess, Message: "Loaded Vex Shadowstep."},
	}
}

func (s *HandlerTestSuite) TestNewValidation() {
	_, err := web.New(&web.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = web.New(nil)
	s.Error(err)
}

func (s *HandlerTestSuite) TestHealthz() {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok"}`, rec.Body.String())
}

func (s *HandlerTestSuite) TestMetrics() {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestDashboardRendersCharacter() {
	s.mockDashboard.EXPECT().
		Render(gomock.Any(), &dashboard.RenderInput{SessionID: s.sessionID, ConsumeFlash: true}).
		Return(&dashboard.RenderOutput{View: s.rogueView()}, nil)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/", nil))
	s.Equal(http.StatusOK, rec.Code)

	body := rec.Body.String()
	s.Contains(body, "Vex Shadowstep")
	s.Contains(body, "36 / 48")
	s.Contains(body, `<span class="temp">(&#43; 4 Temp)</span>`)
	s.Contains(body, "Off-hand Attack: Shortsword")
	s.Contains(body, "Class: Uncanny Dodge")
	s.Contains(body, "Loaded Vex Shadowstep.")
	s.Contains(body, `value="`+testutils.CharacterID+`"`)
}

func (s *HandlerTestSuite) TestDashboardIssuesSessionCookie() {
	var got string
	s.mockDashboard.EXPECT().
		Render(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *dashboard.RenderInput) (*dashboard.RenderOutput, error) {
			got = input.SessionID
			return &dashboard.RenderOutput{View: &dashboard.View{}}, nil
		})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: web.DefaultSessionCookie, Value: "not-a-session"})
	s.router.ServeHTTP(rec, req)
	s.Equal(http.StatusOK, rec.Code)

	s.True(idgen.Valid(web.DefaultSessionPrefix, got))
	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == web.DefaultSessionCookie {
			cookie = c
		}
	}
	s.Require().NotNil(cookie)
	s.Equal(got, cookie.Value)
	s.True(cookie.HttpOnly)
}

func (s *HandlerTestSuite) TestFetchCharacterSuccess() {
	s.mockDashboard.EXPECT().
		LoadCharacter(gomock.Any(), &dashboard.LoadCharacterInput{SessionID: s.sessionID, CharacterID: testutils.CharacterID}).
		Return(&dashboard.LoadCharacterOutput{Name: "Vex Shadowstep"}, nil)
	s.expectFlash(dashboard.FlashSuccess, "Loaded Vex Shadowstep.")

	s.assertRedirect(s.postForm("/character/fetch", url.Values{"character_id": {testutils.CharacterID}}))
}

func (s *HandlerTestSuite) TestFetchCharacterError() {
	s.mockDashboard.EXPECT().
		LoadCharacter(gomock.Any(), gomock.Any()).
		Return(nil, errors.FetchFailed(nil, errors.CodeNotFound, "character service returned HTTP 404 Not Found"))
	s.expectFlash(dashboard.FlashError, "Could not load the character: character service returned HTTP 404 Not Found")

	s.assertRedirect(s.postForm("/character/fetch", url.Values{"character_id": {"1"}}))
}

func (s *HandlerTestSuite) TestUploadCharacter() {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("character_file", "vex.json")
	s.Require().NoError(err)
	_, err = fw.Write([]byte(testutils.RogueCharacterJSON))
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	s.mockDashboard.EXPECT().
		LoadCharacter(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *dashboard.LoadCharacterInput) (*dashboard.LoadCharacterOutput, error) {
			s.Equal("vex.json", input.Filename)
			s.NotNil(input.Upload)
			return &dashboard.LoadCharacterOutput{Name: "Vex Shadowstep"}, nil
		})
	s.expectFlash(dashboard.FlashSuccess, "Loaded Vex Shadowstep from vex.json.")

	req := httptest.NewRequest(http.MethodPost, "/character/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	s.assertRedirect(s.do(req))
}

func (s *HandlerTestSuite) TestUploadWithoutFile() {
	s.expectFlash(dashboard.FlashError, "Choose a character JSON file to upload.")
	s.assertRedirect(s.postForm("/character/upload", url.Values{}))
}

func (s *HandlerTestSuite) TestSetMaxHP() {
	fifty := 50
	s.mockDashboard.EXPECT().
		SetMaxHP(gomock.Any(), &dashboard.SetMaxHPInput{SessionID: s.sessionID, MaxHP: &fifty}).
		Return(&dashboard.SetMaxHPOutput{}, nil)

	s.assertRedirect(s.postForm("/vitality/max-hp", url.Values{"max_hp": {"50"}}))
}

func (s *HandlerTestSuite) TestSetMaxHPBlankClearsOverride() {
	s.mockDashboard.EXPECT().
		SetMaxHP(gomock.Any(), &dashboard.SetMaxHPInput{SessionID: s.sessionID}).
		Return(&dashboard.SetMaxHPOutput{}, nil)

	s.assertRedirect(s.postForm("/vitality/max-hp", url.Values{"max_hp": {""}}))
}

func (s *HandlerTestSuite) TestSetMaxHPNotANumber() {
	s.expectFlash(dashboard.FlashError, "Max HP must be a whole number.")
	s.assertRedirect(s.postForm("/vitality/max-hp", url.Values{"max_hp": {"lots"}}))
}

func (s *HandlerTestSuite) TestGenerateStrategyPrecondition() {
	s.mockDashboard.EXPECT().
		GenerateStrategy(gomock.Any(), &dashboard.GenerateStrategyInput{SessionID: s.sessionID, Situation: "ambush"}).
		Return(nil, errors.FailedPrecondition(dashboard.MsgNoAPIKey))
	s.expectFlash(dashboard.FlashError, dashboard.MsgNoAPIKey)

	s.assertRedirect(s.postForm("/strategy", url.Values{"situation": {"ambush"}}))
}

func (s *HandlerTestSuite) TestGenerateStrategySuccess() {
	s.mockDashboard.EXPECT().
		GenerateStrategy(gomock.Any(), gomock.Any()).
		Return(&dashboard.GenerateStrategyOutput{Strategy: "Hide."}, nil)

	rec := s.postForm("/strategy", url.Values{"situation": {"ambush"}})
	s.Equal(http.StatusSeeOther, rec.Code)
	s.Equal("/#advisor", rec.Header().Get("Location"))
}

func (s *HandlerTestSuite) TestInternalErrorsAreHidden() {
	s.mockDashboard.EXPECT().
		SetAPIKey(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("redis exploded"))
	s.expectFlash(dashboard.FlashError, "Something went wrong. Please try again.")

	s.assertRedirect(s.postForm("/settings/api-key", url.Values{"api_key": {"k"}}))
}

func (s *HandlerTestSuite) TestSetAPIKeyAndReset() {
	s.mockDashboard.EXPECT().
		SetAPIKey(gomock.Any(), &dashboard.SetAPIKeyInput{SessionID: s.sessionID, APIKey: "k"}).
		Return(&dashboard.SetAPIKeyOutput{}, nil)
	s.expectFlash(dashboard.FlashSuccess, "API key saved for this session.")
	s.assertRedirect(s.postForm("/settings/api-key", url.Values{"api_key": {"k"}}))

	s.mockDashboard.EXPECT().
		Reset(gomock.Any(), &dashboard.ResetInput{SessionID: s.sessionID}).
		Return(&dashboard.ResetOutput{}, nil)
	s.expectFlash(dashboard.FlashInfo, "Session cleared.")
	s.assertRedirect(s.postForm("/reset", url.Values{}))
}

func (s *HandlerTestSuite) TestAPIDashboard() {
	s.mockDashboard.EXPECT().
		Render(gomock.Any(), &dashboard.RenderInput{SessionID: s.sessionID}).
		Return(&dashboard.RenderOutput{View: s.rogueView()}, nil)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))
	s.Equal(http.StatusOK, rec.Code)

	var view map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &view))
	s.Equal("Vex Shadowstep", view["name"])
	s.Equal(true, view["loaded"])
}

func (s *HandlerTestSuite) TestAPIFetchCharacterError() {
	s.mockDashboard.EXPECT().
		LoadCharacter(gomock.Any(), gomock.Any()).
		Return(nil, errors.FetchFailed(nil, errors.CodePermissionDenied, "character service returned HTTP 403 Forbidden"))

	rec := s.postJSON("/api/v1/character/fetch", `{"character_id":"42"}`)
	s.Equal(http.StatusForbidden, rec.Code)

	var body errors.Response
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(errors.CodePermissionDenied, body.Code)
	s.Equal(errors.KindFetch, body.Kind)
}

func (s *HandlerTestSuite) TestAPIStrategyPrecondition() {
	s.mockDashboard.EXPECT().
		GenerateStrategy(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPrecondition(dashboard.MsgNoCharacter))

	rec := s.postJSON("/api/v1/strategy", `{"situation":"ambush"}`)
	s.Equal(http.StatusPreconditionFailed, rec.Code)
	s.Contains(rec.Body.String(), dashboard.MsgNoCharacter)
}

func (s *HandlerTestSuite) TestAPIStrategyBadBody() {
	rec := s.postJSON("/api/v1/strategy", `{`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestAPIClassify() {
	rec := s.postJSON("/api/v1/classify", testutils.RogueCharacterJSON)
	s.Require().Equal(http.StatusOK, rec.Code)

	var options map[string][]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &options))
	s.Equal(testutils.RogueActions, options["Action"])
	s.Equal(testutils.RogueBonusActions, options["Bonus Action"])
	s.Equal(testutils.RogueReactions, options["Reaction"])
	s.Empty(options["Other"])
}

func (s *HandlerTestSuite) TestAPIClassifyInvalidJSON() {
	rec := s.postJSON("/api/v1/classify", `not json`)
	s.Equal(http.StatusBadRequest, rec.Code)

	var body errors.Response
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(errors.CodeInvalidArgument, body.Code)
}
