package nativemsg

import (
	"context"
	"io"
	"sync"

	"github.com/fwojciec/jobtailor"
)

// Actions understood by the handler.
const (
	ActionCheckJobPage = "checkJobPage"
	ActionExtractJob   = "extractJobDescription"
	ActionTailorResume = "tailorResume"
	ActionGetSettings  = "getSettings"
	ActionSaveSettings = "saveSettings"
	ActionGetStats     = "getStats"
	ActionURLChanged   = "urlChanged"
)

// Request is one extension message. Fields beyond Action are set per
// action: URL and HTML for page analysis, JobDescription to skip
// extraction when the extension already has the text, Settings for saves.
type Request struct {
	Action         string              `json:"action"`
	URL            string              `json:"url,omitempty"`
	HTML           string              `json:"html,omitempty"`
	JobDescription string              `json:"jobDescription,omitempty"`
	Settings       *jobtailor.Settings `json:"settings,omitempty"`
}

// Response answers one Request. Exactly one data field is set on success;
// Error carries the user-facing message on failure. Every request gets an
// answer, including unknown actions.
type Response struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`

	Classification *jobtailor.Classification `json:"classification,omitempty"`
	Extraction     *jobtailor.Extraction     `json:"extraction,omitempty"`
	Resume         *jobtailor.TailoredResume `json:"resume,omitempty"`
	Settings       *jobtailor.Settings       `json:"settings,omitempty"`
	Stats          *jobtailor.UsageStats     `json:"stats,omitempty"`

	// SettledURL is set on unsolicited notifications pushed after a
	// watched URL stops changing.
	SettledURL string `json:"settledUrl,omitempty"`
}

// SnapshotFunc builds a classifier signal from a raw page. The handler
// takes it as a function so transports stay decoupled from the HTML
// parser.
type SnapshotFunc func(url, html string) (*jobtailor.PageSignal, error)

// Handler dispatches extension requests to jobtailor services. Nil
// services answer their actions with an error instead of panicking, so a
// host can run with a partial wiring (e.g. no API key configured).
type Handler struct {
	Snapshot      SnapshotFunc
	Classifier    jobtailor.Classifier
	Extractor     jobtailor.Extractor
	Optimizer     jobtailor.Optimizer
	Templates     jobtailor.TemplateService
	Registrations jobtailor.RegistrationService
	Settings      jobtailor.SettingsService
	Stats         jobtailor.StatsService
	History       jobtailor.HistoryService

	// Observe receives each urlChanged report. Typically a
	// watch.Watcher's Observe method; the watcher's callback pushes a
	// settled-URL notification back through Notify.
	Observe func(url string)

	writeMu sync.Mutex
}

// Serve reads requests from r and writes one response per request to w
// until r is exhausted. A malformed frame ends the loop; handler errors
// are reported in the response and the loop continues.
func (h *Handler) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var req Request
		if err := ReadMessage(r, &req); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		if err := h.Notify(w, h.Handle(ctx, &req)); err != nil {
			return err
		}
	}
}

// Notify writes one message to w. It serializes against Serve's response
// writes, so watcher callbacks can push unsolicited notifications on the
// same stream.
func (h *Handler) Notify(w io.Writer, resp *Response) error {
	h.writeMu.Lock()
	defer h.writeMu.Unlock()
	return WriteMessage(w, resp)
}

// Handle answers a single request.
func (h *Handler) Handle(ctx context.Context, req *Request) *Response {
	switch req.Action {
	case ActionCheckJobPage:
		return h.checkJobPage(req)
	case ActionExtractJob:
		return h.extractJobDescription(req)
	case ActionTailorResume:
		return h.tailorResume(ctx, req)
	case ActionGetSettings:
		return h.getSettings(ctx)
	case ActionSaveSettings:
		return h.saveSettings(ctx, req)
	case ActionGetStats:
		return h.getStats(ctx)
	case ActionURLChanged:
		return h.urlChanged(req)
	default:
		return errResponse(jobtailor.Errorf(jobtailor.EINVALID, "unknown action %q", req.Action))
	}
}

func (h *Handler) checkJobPage(req *Request) *Response {
	if h.Snapshot == nil || h.Classifier == nil {
		return errResponse(jobtailor.Errorf(jobtailor.EINVALID, "page detection is not configured"))
	}

	signal, err := h.Snapshot(req.URL, req.HTML)
	if err != nil {
		return errResponse(err)
	}
	classification, err := h.Classifier.Classify(signal)
	if err != nil {
		return errResponse(err)
	}
	return &Response{OK: true, Classification: classification}
}

func (h *Handler) extractJobDescription(req *Request) *Response {
	if h.Extractor == nil {
		return errResponse(jobtailor.Errorf(jobtailor.EINVALID, "extraction is not configured"))
	}

	extraction, err := h.Extractor.Extract(req.HTML)
	if err != nil {
		return errResponse(err)
	}
	return &Response{OK: true, Extraction: extraction}
}

func (h *Handler) tailorResume(ctx context.Context, req *Request) *Response {
	if h.Optimizer == nil || h.Templates == nil {
		return errResponse(jobtailor.Errorf(jobtailor.EINVALID, "optimization is not configured"))
	}

	jobDescription := req.JobDescription
	if jobDescription == "" {
		if h.Extractor == nil || req.HTML == "" {
			return errResponse(jobtailor.Errorf(jobtailor.EINVALID, "job description or page HTML required"))
		}
		extraction, err := h.Extractor.Extract(req.HTML)
		if err != nil {
			return errResponse(err)
		}
		if jobtailor.IsNoJobContent(extraction.Text) {
			return errResponse(jobtailor.Errorf(jobtailor.EINVALID, "%s", extraction.Text))
		}
		jobDescription = extraction.Text
	}

	template, err := h.Templates.GetCurrent(ctx)
	if err != nil {
		return errResponse(err)
	}

	result, err := h.Optimizer.Optimize(ctx, jobDescription, template.Content)
	if err != nil {
		return errResponse(err)
	}

	// Bookkeeping failures don't void a successful optimization.
	if h.Registrations != nil {
		if status, err := h.Registrations.Status(ctx, template.Hash); err == nil && status.NeedsRegistration {
			_ = h.Registrations.Register(ctx, template.Hash)
		}
	}
	if h.Stats != nil {
		_ = h.Stats.Record(ctx, result.Method == jobtailor.MethodEfficient)
	}
	if h.History != nil && req.URL != "" {
		_ = h.History.CreateOptimization(ctx, &jobtailor.Optimization{
			JobURL: req.URL,
			Method: result.Method,
		})
	}

	return &Response{OK: true, Resume: result}
}

func (h *Handler) urlChanged(req *Request) *Response {
	if h.Observe == nil {
		return errResponse(jobtailor.Errorf(jobtailor.EINVALID, "URL watching is not configured"))
	}
	if req.URL == "" {
		return errResponse(jobtailor.Errorf(jobtailor.EINVALID, "url required"))
	}

	h.Observe(req.URL)
	return &Response{OK: true}
}

func (h *Handler) getSettings(ctx context.Context) *Response {
	if h.Settings == nil {
		return errResponse(jobtailor.Errorf(jobtailor.EINVALID, "settings storage is not configured"))
	}

	settings, err := h.Settings.Get(ctx)
	if err != nil {
		return errResponse(err)
	}
	return &Response{OK: true, Settings: settings}
}

func (h *Handler) saveSettings(ctx context.Context, req *Request) *Response {
	if h.Settings == nil {
		return errResponse(jobtailor.Errorf(jobtailor.EINVALID, "settings storage is not configured"))
	}
	if req.Settings == nil {
		return errResponse(jobtailor.Errorf(jobtailor.EINVALID, "settings payload required"))
	}

	if err := h.Settings.Save(ctx, req.Settings); err != nil {
		return errResponse(err)
	}
	return &Response{OK: true}
}

func (h *Handler) getStats(ctx context.Context) *Response {
	if h.Stats == nil {
		return errResponse(jobtailor.Errorf(jobtailor.EINVALID, "stats storage is not configured"))
	}

	stats, err := h.Stats.Get(ctx)
	if err != nil {
		return errResponse(err)
	}
	return &Response{OK: true, Stats: stats}
}

func errResponse(err error) *Response {
	return &Response{Error: jobtailor.ErrorMessage(err)}
}
