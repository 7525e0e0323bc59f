package serve

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/quickbom/quickbom/internal/cmdlogger"
	"github.com/quickbom/quickbom/internal/version"
	"github.com/quickbom/quickbom/pkg/integrator"
	"github.com/quickbom/quickbom/pkg/models"
)

// MaxUploadSize caps the size of a whole /integrate request.
const MaxUploadSize = 32 << 20

var errMissingUploads = errors.New(`expected the "hatbom" and "syft" files, or two "files" to detect`)

type infoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type integrateResponse struct {
	Filename string          `json:"filename"`
	Summary  models.Summary  `json:"summary"`
	SBOM     json.RawMessage `json:"sbom"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handler struct {
	opts integrator.Options
}

// NewHandler returns the HTTP API of quickbom:
//
//	GET  /          service information
//	GET  /health    liveness check
//	POST /integrate multipart upload of the two SBOMs
func NewHandler(opts integrator.Options) http.Handler {
	h := &handler{opts: opts}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.info)
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("POST /integrate", h.integrate)

	return mux
}

func (h *handler) info(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, infoResponse{
		Message: "quickbom SBOM integration API",
		Version: version.QuickBOMVersion,
	})
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (h *handler) integrate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)

	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid multipart form: %w", err))

		return
	}
	defer r.MultipartForm.RemoveAll()

	result, err := h.integrateForm(r.MultipartForm)
	if err != nil {
		writeError(w, statusFor(err), err)

		return
	}

	writeJSON(w, http.StatusOK, integrateResponse{
		Filename: result.Filename,
		Summary:  result.Summary,
		SBOM:     result.Document,
	})
}

func (h *handler) integrateForm(form *multipart.Form) (*integrator.Result, error) {
	hatbom, syft, files := form.File["hatbom"], form.File["syft"], form.File["files"]

	switch {
	case len(hatbom) == 1 && len(syft) == 1:
		hatbomJSON, err := readUpload(hatbom[0])
		if err != nil {
			return nil, err
		}

		syftJSON, err := readUpload(syft[0])
		if err != nil {
			return nil, err
		}

		return integrator.Integrate(hatbomJSON, syftJSON, h.opts)
	case len(files) == 2:
		first, err := readUpload(files[0])
		if err != nil {
			return nil, err
		}

		second, err := readUpload(files[1])
		if err != nil {
			return nil, err
		}

		return integrator.IntegrateAuto(first, second, h.opts)
	}

	return nil, errMissingUploads
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()

	return io.ReadAll(f)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, integrator.ErrDecode),
		errors.Is(err, integrator.ErrSchemaMismatch),
		errors.Is(err, errMissingUploads):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		cmdlogger.Errorf("Failed to integrate uploaded SBOMs: %v", err)
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		cmdlogger.Warnf("Failed to write response: %v", err)
	}
}
