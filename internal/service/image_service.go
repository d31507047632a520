package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"finbay/internal/config"
	"finbay/internal/models"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

const (
	DefaultImageUploadDir       = "/tmp/finbay/uploads/images"
	DefaultImageMaxUploadSizeMB = 10
	AvatarSize                  = 250
	ListingMaxSize              = 1080
	JPEGQuality                 = 82
	WebPQuality                 = 70
)

// ImageService normalizes uploaded images: avatars become square center
// crops, listing photos are downscaled to a bounded size. Both are stored as
// JPEG with a WebP sibling for clients that accept it.
type ImageService struct {
	uploadDir          string
	maxUploadSizeBytes int64
}

func NewImageService(cfg *config.Config) *ImageService {
	uploadDir := DefaultImageUploadDir
	maxUploadSizeMB := DefaultImageMaxUploadSizeMB

	if cfg != nil {
		if cfg.ImageUploadDir != "" {
			uploadDir = cfg.ImageUploadDir
		}
		if cfg.ImageMaxUploadSizeMB > 0 {
			maxUploadSizeMB = cfg.ImageMaxUploadSizeMB
		}
	}

	return &ImageService{
		uploadDir:          uploadDir,
		maxUploadSizeBytes: int64(maxUploadSizeMB) * 1024 * 1024,
	}
}

// UploadDir returns the root directory served as /media.
func (s *ImageService) UploadDir() string {
	return s.uploadDir
}

func (s *ImageService) decodeUpload(content []byte, providedType string) (image.Image, error) {
	if len(content) == 0 {
		return nil, models.NewValidationError("No file uploaded")
	}
	if int64(len(content)) > s.maxUploadSizeBytes {
		return nil, models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", s.maxUploadSizeBytes/(1024*1024)))
	}

	detected := http.DetectContentType(content)
	if !isAllowedImageMIME(detected) {
		return nil, models.NewValidationError("Invalid image type")
	}

	decoded, format, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, models.NewValidationError("Invalid image file")
	}
	if !isSupportedDecodedFormat(format) {
		return nil, models.NewValidationError("Unsupported image format")
	}
	if provided := normalizeContentType(providedType); strings.HasPrefix(provided, "image/") &&
		!isMatchingContentType(provided, decodedFormatToMime(format)) {
		return nil, models.NewValidationError("Image content type mismatch")
	}
	return decoded, nil
}

// ProcessAvatar crops the upload to a centered square, scales it to 250x250
// and stores it. Returns the public URL of the JPEG rendition.
func (s *ImageService) ProcessAvatar(_ context.Context, userID uint, contentType string, content []byte) (string, error) {
	if userID == 0 {
		return "", models.NewValidationError("Invalid user")
	}
	decoded, err := s.decodeUpload(content, contentType)
	if err != nil {
		return "", err
	}

	square := centerCropSquare(decoded)
	avatar := resizeExact(square, AvatarSize, AvatarSize)

	return s.storeRenditions(userID, "avatars", avatar, content)
}

// ProcessListingImage bounds the upload to 1080px on its longest edge and
// stores it. Returns the public URL of the JPEG rendition.
func (s *ImageService) ProcessListingImage(_ context.Context, userID uint, contentType string, content []byte) (string, error) {
	if userID == 0 {
		return "", models.NewValidationError("Invalid user")
	}
	decoded, err := s.decodeUpload(content, contentType)
	if err != nil {
		return "", err
	}

	bounded := resizeToFit(decoded, ListingMaxSize, ListingMaxSize)

	return s.storeRenditions(userID, "items", bounded, content)
}

func (s *ImageService) storeRenditions(userID uint, subdir string, img image.Image, original []byte) (string, error) {
	encodedJPG, err := encodeJPEG(img, JPEGQuality)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	encodedWebP, err := encodeWebP(img, WebPQuality)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	hash := buildDeterministicImageHash(userID, original)
	jpgRel := filepath.ToSlash(filepath.Join(subdir, hash+".jpg"))
	webpRel := filepath.ToSlash(filepath.Join(subdir, hash+".webp"))

	if err := writeBytesToFile(filepath.Join(s.uploadDir, jpgRel), encodedJPG); err != nil {
		return "", models.NewInternalError(err)
	}
	if err := writeBytesToFile(filepath.Join(s.uploadDir, webpRel), encodedWebP); err != nil {
		_ = os.Remove(filepath.Join(s.uploadDir, jpgRel))
		return "", models.NewInternalError(err)
	}

	return "/media/" + jpgRel, nil
}

// centerCropSquare crops the largest centered square out of src.
func centerCropSquare(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == h {
		return src
	}

	side := w
	if h < side {
		side = h
	}
	x := b.Min.X + (w-side)/2
	y := b.Min.Y + (h-side)/2

	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(dst, dst.Bounds(), src, image.Point{X: x, Y: y}, draw.Src)
	return dst
}

// resizeExact scales src to exactly w x h.
func resizeExact(src image.Image, w, h int) image.Image {
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}

// resizeToFit scales src down so it fits within maxWidth x maxHeight,
// preserving aspect ratio. Images already within bounds pass through.
func resizeToFit(src image.Image, maxWidth, maxHeight int) image.Image {
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w <= 0 || h <= 0 {
		return src
	}
	if w <= maxWidth && h <= maxHeight {
		return src
	}

	scaleW := float64(maxWidth) / float64(w)
	scaleH := float64(maxHeight) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeWebP(img image.Image, quality int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := webp.Encode(buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isAllowedImageMIME(contentType string) bool {
	switch normalizeContentType(contentType) {
	case "image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp":
		return true
	default:
		return false
	}
}

func normalizeContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}

func isMatchingContentType(provided, detected string) bool {
	p := normalizeContentType(provided)
	d := normalizeContentType(detected)
	if p == d {
		return true
	}
	return (p == "image/jpg" && d == "image/jpeg") || (p == "image/jpeg" && d == "image/jpg")
}

func isSupportedDecodedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "jpeg", "jpg", "png", "gif", "webp":
		return true
	default:
		return false
	}
}

func decodedFormatToMime(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "jpeg", "jpg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	default:
		return ""
	}
}

func buildDeterministicImageHash(userID uint, content []byte) string {
	h := sha256.New()
	_, _ = fmt.Fprintf(h, "%d:", userID)
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))
}

func writeBytesToFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
