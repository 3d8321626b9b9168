package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"greg-hacke/stripclean/clean"
	"greg-hacke/stripclean/meta"
)

// Banner is returned by the index route
const Banner = "StripClean Backend Running — /clean & /analyze ready!"

// uploadField is the multipart field carrying the image
const uploadField = "image"

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type analyzeResponse struct {
	Success bool `json:"success"`
	*meta.Report
}

func (s *Server) index(c echo.Context) error {
	return c.String(http.StatusOK, Banner)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// analyze returns the privacy report for the uploaded image
func (s *Server) analyze(c echo.Context) error {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "No image"})
	}

	file, err := fh.Open()
	if err != nil {
		return s.failure(c, fmt.Errorf("open upload: %w", err))
	}
	defer file.Close()

	report, err := s.analyzer.Analyze(file)
	if err != nil {
		return s.failure(c, err)
	}

	s.logger.Debug("analyzed upload",
		zap.String("request_id", requestIDOf(c)),
		zap.String("filename", fh.Filename),
		zap.Int64("size", fh.Size),
		zap.Int("tags", len(report.Metadata)))
	return c.JSON(http.StatusOK, analyzeResponse{Success: true, Report: report})
}

// clean returns a metadata-free copy of the uploaded image
func (s *Server) clean(c echo.Context) error {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		// A part without a file name is parsed as a plain form value
		if form, ferr := c.MultipartForm(); ferr == nil && len(form.Value[uploadField]) > 0 {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Empty filename"})
		}
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "No image uploaded"})
	}

	file, err := fh.Open()
	if err != nil {
		return s.failure(c, fmt.Errorf("open upload: %w", err))
	}
	defer file.Close()

	res, err := clean.Strip(file, s.cleanOpts)
	if err != nil {
		return s.failure(c, err)
	}

	name := res.DownloadName(fh.Filename)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", name))
	return c.Blob(http.StatusOK, res.MIMEType, res.Data)
}

// failure maps an error to 400 for undecodable input and 500 otherwise
func (s *Server) failure(c echo.Context, err error) error {
	var decodeErr *meta.DecodeError
	if errors.As(err, &decodeErr) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: decodeErr.Error()})
	}

	s.logger.Error("request processing failed",
		zap.String("request_id", requestIDOf(c)),
		zap.String("path", c.Path()),
		zap.Error(err))
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

// errorHandler renders echo errors (404, 413, ...) in the same JSON shape
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprint(he.Message)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, errorResponse{Error: msg})
	}
	if err != nil {
		s.logger.Error("failed to write error response", zap.Error(err))
	}
}

func requestIDOf(c echo.Context) string {
	id, _ := c.Get(RequestIDKey).(string)
	return id
}
