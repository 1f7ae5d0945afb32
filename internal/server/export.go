package server

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/macproducts/routergen/internal/common"
	"github.com/macproducts/routergen/internal/router"
)

// errNoResult is what every download surface reports until a router exists.
var errNoResult = common.NewAppError("NO_RESULT", "no router generated yet", common.ErrNotFound)

// lastDocument parses the session's most recent result back into a document
// for export. The stored CSV is already repaired, so the parse is safe.
func (s *Service) lastDocument(w http.ResponseWriter, r *http.Request) (*router.Document, bool) {
	_, hist := s.currentSession(w, r)
	entry, ok := hist.LastResult()
	if !ok {
		http.Error(w, errNoResult.Message, common.HTTPStatus(errNoResult))
		return nil, false
	}
	return router.Parse(entry.RawCSV), true
}

func (s *Service) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.lastDocument(w, r)
	if !ok {
		return
	}
	name := fmt.Sprintf("router_%s.csv", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	_, _ = w.Write(s.exports.CSV(doc))
}

func (s *Service) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.lastDocument(w, r)
	if !ok {
		return
	}
	b, err := s.exports.XLSX(doc)
	if err != nil {
		s.logger.Error("xlsx export failed", zap.Error(err))
		http.Error(w, "export failed", common.HTTPStatus(err))
		return
	}
	name := fmt.Sprintf("router_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	_, _ = w.Write(b)
}

func (s *Service) handleRaw(w http.ResponseWriter, r *http.Request) {
	_, hist := s.currentSession(w, r)
	entry, ok := hist.LastResult()
	if !ok {
		http.Error(w, errNoResult.Message, common.HTTPStatus(errNoResult))
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(entry.RawCSV))
}
