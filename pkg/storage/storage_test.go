package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lv33global/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	return form.File["image"][0]
}

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func TestUniqueName(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	assert.Equal(t, "1700000000123-logo.png", UniqueName(now, "logo.png"))
	assert.Equal(t, "1700000000123-passwd", UniqueName(now, "../../etc/passwd"))
	assert.Equal(t, "1700000000123-evil.png", UniqueName(now, `C:\temp\evil.png`))
	assert.Equal(t, "1700000000123-upload", UniqueName(now, ""))
}

func TestNameFromPath(t *testing.T) {
	name, ok := NameFromPath("/uploads/1-a.png")
	assert.True(t, ok)
	assert.Equal(t, "1-a.png", name)

	for _, p := range []string{"", "/uploads/", "/static/1-a.png", "/uploads/../x", "/uploads/a/b.png", "/uploads/.."} {
		_, ok := NameFromPath(p)
		assert.False(t, ok, p)
	}
}

func TestDisk_SaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	disk, err := NewDisk(dir, logger.New())
	require.NoError(t, err)
	disk.now = fixedClock(1700000000000)

	publicPath, err := disk.Save(context.Background(), fileHeader(t, "logo.png", "png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/1700000000000-logo.png", publicPath)

	data, err := os.ReadFile(filepath.Join(dir, "1700000000000-logo.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	disk.Remove(context.Background(), publicPath)
	_, err = os.Stat(filepath.Join(dir, "1700000000000-logo.png"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	// Removing again is silent
	disk.Remove(context.Background(), publicPath)
}

func TestDisk_SaveCollisionUsesNextMillisecond(t *testing.T) {
	disk, err := NewDisk(t.TempDir(), logger.New())
	require.NoError(t, err)
	disk.now = fixedClock(42)

	first, err := disk.Save(context.Background(), fileHeader(t, "a.png", "one"))
	require.NoError(t, err)
	second, err := disk.Save(context.Background(), fileHeader(t, "a.png", "two"))
	require.NoError(t, err)

	assert.Equal(t, "/uploads/42-a.png", first)
	assert.Equal(t, "/uploads/43-a.png", second)
}

func TestDisk_RemoveIgnoresForeignPaths(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "uploads")
	disk, err := NewDisk(dir, logger.New())
	require.NoError(t, err)

	outside := filepath.Join(root, "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))

	disk.Remove(context.Background(), "/uploads/../keep.txt")
	disk.Remove(context.Background(), "keep.txt")

	_, err = os.Stat(outside)
	assert.NoError(t, err)
}

type mockObjectStore struct {
	mock.Mock
}

func (m *mockObjectStore) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	data, _ := io.ReadAll(file)
	args := m.Called(key, string(data), contentType)
	return args.String(0), args.Error(1)
}

func (m *mockObjectStore) DeleteFile(ctx context.Context, key string) error {
	return m.Called(key).Error(0)
}

func (m *mockObjectStore) ObjectURL(key string) string {
	return "https://cdn.test/" + key
}

func TestS3_SaveAndRemove(t *testing.T) {
	client := new(mockObjectStore)
	store := NewS3(client, logger.New())
	store.now = fixedClock(7)

	client.On("UploadFile", "uploads/7-banner.jpg", "jpeg", mock.MatchedBy(func(ct string) bool {
		return strings.Contains(ct, "octet-stream")
	})).Return("https://cdn.test/uploads/7-banner.jpg", nil)
	client.On("DeleteFile", "uploads/7-banner.jpg").Return(errors.New("network down"))

	publicPath, err := store.Save(context.Background(), fileHeader(t, "banner.jpg", "jpeg"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/7-banner.jpg", publicPath)
	assert.Equal(t, "https://cdn.test/uploads/7-banner.jpg", store.ObjectURL("7-banner.jpg"))

	// Delete failures are swallowed
	store.Remove(context.Background(), publicPath)

	client.AssertExpectations(t)
}
