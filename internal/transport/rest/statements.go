package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/xapi-statements/internal/domain"
	"github.com/heartmarshall/xapi-statements/internal/service/query"
	"github.com/heartmarshall/xapi-statements/internal/service/statement"
	"github.com/heartmarshall/xapi-statements/pkg/ctxutil"
)

type statementService interface {
	Create(ctx context.Context, raw statement.RawStatement, caller statement.CallerContext) (*domain.Statement, error)
	CreateAsync(ctx context.Context, raw statement.RawStatement, caller statement.CallerContext) error
}

type queryService interface {
	ListStatements(ctx context.Context, input query.ListInput) ([]*domain.Statement, error)
	GetStatement(ctx context.Context, id uuid.UUID) (*domain.Statement, error)
	MonthlyActivity(ctx context.Context, q domain.ActorQuery, year int, month time.Month) ([]query.DayBucket, error)
}

// StatementHandler serves the statement ingest and query endpoints.
type StatementHandler struct {
	statements statementService
	queries    queryService
}

// NewStatementHandler creates a StatementHandler.
func NewStatementHandler(statements statementService, queries queryService) *StatementHandler {
	return &StatementHandler{statements: statements, queries: queries}
}

// CreateResponse is the JSON response of a successful ingest.
type CreateResponse struct {
	Status    int            `json:"status"`
	Statement *StatementJSON `json:"statement,omitempty"`
}

// Create handles POST /v1/statements. With ?async=true the payload is
// queued and 202 returned before validation runs.
func (h *StatementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var raw statement.RawStatement
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
			Kind: "structural", Message: "malformed JSON payload",
		}})
		return
	}

	caller := statement.CallerContext{Email: ctxutil.CallerEmailFromCtx(r.Context())}

	if r.URL.Query().Get("async") == "true" {
		if err := h.statements.CreateAsync(r.Context(), raw, caller); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusAccepted, CreateResponse{Status: http.StatusAccepted})
		return
	}

	st, err := h.statements.Create(r.Context(), raw, caller)
	if err != nil {
		writeError(w, err)
		return
	}

	body := toStatementJSON(st)
	writeJSON(w, http.StatusOK, CreateResponse{Status: http.StatusOK, Statement: &body})
}

// ListResponse is the JSON response of a statement listing.
type ListResponse struct {
	Statements []StatementRowJSON `json:"statements"`
}

// List handles GET /v1/statements. Exactly one actor identifier query
// parameter selects the actor; verb/since/until/limit/offset narrow the
// listing.
func (h *StatementHandler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	input := query.ListInput{Actor: actorQueryFromParams(params)}
	if verb := params.Get("verb"); verb != "" {
		input.VerbID = &verb
	}
	var err error
	if input.Since, err = parseTimeParam(params.Get("since")); err != nil {
		writeError(w, err)
		return
	}
	if input.Until, err = parseTimeParam(params.Get("until")); err != nil {
		writeError(w, err)
		return
	}
	input.Limit, _ = strconv.Atoi(params.Get("limit"))
	input.Offset, _ = strconv.Atoi(params.Get("offset"))

	statements, err := h.queries.ListStatements(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	rows := make([]StatementRowJSON, 0, len(statements))
	for _, st := range statements {
		rows = append(rows, toStatementRowJSON(st))
	}
	writeJSON(w, http.StatusOK, ListResponse{Statements: rows})
}

// Get handles GET /v1/statements/{id}.
func (h *StatementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
			Kind: "format", Field: "id", Message: "must be a UUID",
		}})
		return
	}

	st, err := h.queries.GetStatement(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatementJSON(st))
}

// MonthlyActivityResponse is the JSON response of the activity report.
type MonthlyActivityResponse struct {
	Year  int               `json:"year"`
	Month int               `json:"month"`
	Days  []query.DayBucket `json:"days"`
}

// MonthlyActivity handles GET /v1/activity. year and month are required;
// the actor is selected the same way as in List.
func (h *StatementHandler) MonthlyActivity(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	year, err := strconv.Atoi(params.Get("year"))
	if err != nil {
		writeError(w, domain.NewFormatError("query.year", params.Get("year"), "must be an integer"))
		return
	}
	monthNum, err := strconv.Atoi(params.Get("month"))
	if err != nil {
		writeError(w, domain.NewFormatError("query.month", params.Get("month"), "must be an integer"))
		return
	}

	days, err := h.queries.MonthlyActivity(r.Context(),
		actorQueryFromParams(params), year, time.Month(monthNum))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MonthlyActivityResponse{Year: year, Month: monthNum, Days: days})
}

func actorQueryFromParams(params map[string][]string) domain.ActorQuery {
	get := func(key string) *string {
		if vals, ok := params[key]; ok && len(vals) > 0 && vals[0] != "" {
			return &vals[0]
		}
		return nil
	}
	return domain.ActorQuery{
		Email:       get("email"),
		Mbox:        get("mbox"),
		MboxSHA1Sum: get("mbox_sha1sum"),
		OpenID:      get("openid"),
		HomePage:    get("home_page"),
	}
}

func parseTimeParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, domain.NewFormatError("query.time", value, "must be RFC 3339")
	}
	return &ts, nil
}
