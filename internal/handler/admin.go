package handler

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"gaming-storefront/internal/auth"
	"gaming-storefront/internal/dto"
	"gaming-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

const snapshotFilename = "storefront-backup.json"

type AdminHandler struct {
	authorizer      auth.Authorizer
	snapshotService service.SnapshotService
	dashboard       service.DashboardService
	maxImageBytes   int64
}

func NewAdminHandler(
	authorizer auth.Authorizer,
	snapshotService service.SnapshotService,
	dashboard service.DashboardService,
	maxImageBytes int64,
) *AdminHandler {
	return &AdminHandler{
		authorizer:      authorizer,
		snapshotService: snapshotService,
		dashboard:       dashboard,
		maxImageBytes:   maxImageBytes,
	}
}

// Login only tells the client whether the identity is an administrator. The
// client then sends it on every admin request.
func (h *AdminHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if !h.authorizer.IsAdmin(req.Identity) {
		return echo.NewHTTPError(http.StatusForbidden, "admin access denied")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"identity": strings.TrimSpace(req.Identity),
	})
}

func (h *AdminHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.dashboard.Stats(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) ExportSnapshot(c echo.Context) error {
	ctx := c.Request().Context()

	raw, err := h.snapshotService.Export(ctx)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", snapshotFilename))
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, raw)
}

func (h *AdminHandler) ImportSnapshot(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "read snapshot body")
	}

	result, err := h.snapshotService.Import(ctx, body)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// UploadImage converts the multipart "image" field into a data URL that the
// admin form stores as the product image.
func (h *AdminHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing image file")
	}
	if fileHeader.Size > h.maxImageBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "image too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("open uploaded image: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxImageBytes+1))
	if err != nil {
		return fmt.Errorf("read uploaded image: %w", err)
	}
	if int64(len(data)) > h.maxImageBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "image too large")
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return echo.NewHTTPError(http.StatusBadRequest, "file is not an image")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"image": "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data),
	})
}
