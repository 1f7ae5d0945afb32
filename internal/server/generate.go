package server

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/macproducts/routergen/internal/common"
	"github.com/macproducts/routergen/internal/llm"
	"github.com/macproducts/routergen/internal/render"
	"github.com/macproducts/routergen/internal/router"
	"github.com/macproducts/routergen/internal/session"
)

// maxDrawingBytes bounds the uploaded PDF size.
const maxDrawingBytes = 32 << 20

// handleGenerate runs one interaction: validate the upload, record the
// user's request, call the generator, repair and render its output, record
// the result. Missing input is rejected before any external call; upstream
// failures become a readable failure entry; malformed output is the repair
// pipeline's problem and never an error. Every path leaves the session
// usable for a retry.
func (s *Service) handleGenerate(w http.ResponseWriter, r *http.Request) {
	sid, hist := s.currentSession(w, r)
	ctx := common.WithSessionID(r.Context(), sid)

	if err := r.ParseMultipartForm(maxDrawingBytes); err != nil {
		s.renderPage(w, hist, "Upload was not readable. Please attach a PDF drawing and try again.", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("drawing")
	if err != nil {
		s.renderPage(w, hist, "Please upload an engineering drawing (PDF).", http.StatusBadRequest)
		return
	}
	defer file.Close()

	qtyStr := r.FormValue("quantity")
	qty, err := strconv.Atoi(qtyStr)
	if err != nil || qty < 1 {
		s.renderPage(w, hist, "Please enter a positive quantity.", http.StatusBadRequest)
		return
	}

	pdf, err := io.ReadAll(io.LimitReader(file, maxDrawingBytes))
	if err != nil || len(pdf) == 0 {
		s.renderPage(w, hist, "The uploaded drawing could not be read.", http.StatusBadRequest)
		return
	}

	rid := common.RequestIDFromContext(ctx)
	hist.Append(session.Entry{
		Role:    session.RoleUser,
		Message: fmt.Sprintf("Generate router for %s with quantity: %d", header.Filename, qty),
	})

	raw, err := s.gen.GenerateRouter(ctx, llm.GenerateRequest{
		PDF:      pdf,
		Filename: header.Filename,
		Quantity: qty,
	})
	if err != nil {
		s.logger.Warn("generation failed",
			zap.String("req_id", rid),
			zap.String("session_id", sid),
			zap.String("file", header.Filename),
			zap.Error(err),
		)
		hist.Append(session.Entry{
			Role: session.RoleAssistant,
			Message: fmt.Sprintf("Error: %v. Please check: the API key is valid, the PDF is readable, and the network connection is stable.", err),
		})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	doc := s.pipeline.Run(raw)
	if doc.Empty() {
		hist.Append(session.Entry{
			Role:    session.RoleAssistant,
			Message: "The model returned no usable router for this drawing. Please try again.",
		})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if bad := router.MismatchedOperations(doc, qty); len(bad) > 0 {
		seqs := make([]int, 0, len(bad))
		for _, op := range bad {
			seqs = append(seqs, op.Seq)
		}
		s.logger.Warn("operation quantity mismatch",
			zap.String("req_id", rid),
			zap.String("session_id", sid),
			zap.Int("requested", qty),
			zap.Ints("ops", seqs),
		)
	}

	view := render.Build(doc)
	hist.Append(session.Entry{
		Role:    session.RoleAssistant,
		Message: "Router generated successfully.",
		RawCSV:  doc.Serialize(),
		Router:  &view,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
