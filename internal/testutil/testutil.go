package testutil

import (
	"github.com/datastax/csv-projector/log"
	"github.com/datastax/csv-projector/types"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
)

// CampaignsCSV has the columns [date, campaign, clicks, cost] and three rows.
const CampaignsCSV = `date,campaign,clicks,cost
2023-07-01,summer_sale,120,35.50
2023-07-02,summer_sale,98,28.10
2023-07-03,back_to_school,143,41.25
`

var CampaignsColumns = []string{"date", "campaign", "clicks", "cost"}

// CSVServer serves a fixed CSV body and counts the requests it receives. The redirect path answers with a 302 to the
// CSV path, like a Google Drive export link does, and any other path gets a 404.
type CSVServer struct {
	*httptest.Server
	hits atomic.Int64
}

const (
	CSVPath      = "/campaigns.csv"
	RedirectPath = "/uc"
)

func NewCSVServer(body string) *CSVServer {
	s := &CSVServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Inc()
		if r.URL.Path == RedirectPath {
			http.Redirect(w, r, CSVPath, http.StatusFound)
			return
		}
		if r.URL.Path != CSVPath {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}))
	return s
}

// Link returns the URL of the served CSV.
func (s *CSVServer) Link() string {
	return s.URL + CSVPath
}

// RedirectLink returns a URL that redirects to the served CSV.
func (s *CSVServer) RedirectLink() string {
	return s.URL + RedirectPath + "?export=download"
}

func (s *CSVServer) Hits() int64 {
	return s.hits.Load()
}

func CampaignsTable() *types.Table {
	table, err := types.NewTable(CampaignsColumns, [][]string{
		{"2023-07-01", "summer_sale", "120", "35.50"},
		{"2023-07-02", "summer_sale", "98", "28.10"},
		{"2023-07-03", "back_to_school", "143", "41.25"},
	})
	PanicIfError(err)
	return table
}

func PanicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func TestLogger() log.Logger {
	if strings.ToUpper(os.Getenv("TEST_TRACE")) == "ON" {
		logger, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		return log.NewZapLogger(logger)
	}

	return log.NewZapLogger(zap.NewNop())
}
