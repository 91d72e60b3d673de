package clients

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMinIOClient(t *testing.T) {
	_, err := NewMinIOClient(&cfg.MinIOCfg{MinioEndpoint: "localhost:9000"})
	assert.ErrorIs(t, err, e.ErrStorageNotConfigured)

	client, err := NewMinIOClient(&cfg.MinIOCfg{
		MinioEndpoint:     "localhost:9000",
		BucketName:        "product-images",
		MinioRootUser:     "minio",
		MinioRootPassword: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", client.EndpointURL().Host)
}

func TestPublicReadPolicy(t *testing.T) {
	raw, err := PublicReadPolicy("product-images")
	require.NoError(t, err)

	var policy struct {
		Version   string
		Statement []struct {
			Effect    string
			Principal map[string][]string
			Action    []string
			Resource  []string
		}
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &policy))

	assert.Equal(t, "2012-10-17", policy.Version)
	require.Len(t, policy.Statement, 1)

	st := policy.Statement[0]
	assert.Equal(t, "Allow", st.Effect)
	assert.Equal(t, []string{"*"}, st.Principal["AWS"])
	assert.Equal(t, []string{"s3:GetObject"}, st.Action)
	assert.Equal(t, []string{"arn:aws:s3:::product-images/*"}, st.Resource)
}

// fakeS3 отвечает на запросы, которые делает EnsureBucket, и запоминает их.
type fakeS3 struct {
	mu       sync.Mutex
	exists   bool
	requests []string
	policy   string
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	q := r.URL.Query()
	switch {
	case q.Has("location"):
		f.requests = append(f.requests, "GET location")
		w.Header().Set("Content-Type", "application/xml")
		_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><LocationConstraint xmlns="http://s3.amazonaws.com/doc/2006-03-01/"></LocationConstraint>`)
	case q.Has("policy"):
		body, _ := io.ReadAll(r.Body)
		f.policy = string(body)
		f.requests = append(f.requests, "PUT policy")
		w.WriteHeader(http.StatusNoContent)
	case r.Method == http.MethodHead:
		f.requests = append(f.requests, "HEAD bucket")
		if !f.exists {
			w.WriteHeader(http.StatusNotFound)
		}
	case r.Method == http.MethodPut:
		f.requests = append(f.requests, "PUT bucket")
		f.exists = true
	}
}

func (f *fakeS3) seen(req string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.requests {
		if r == req {
			return true
		}
	}
	return false
}

func newFakeS3Client(t *testing.T, s3 *fakeS3) *minio.Client {
	t.Helper()

	srv := httptest.NewServer(s3)
	t.Cleanup(srv.Close)

	client, err := NewMinIOClient(&cfg.MinIOCfg{
		MinioEndpoint:     strings.TrimPrefix(srv.URL, "http://"),
		BucketName:        "product-images",
		MinioRootUser:     "minio",
		MinioRootPassword: "secret",
	})
	require.NoError(t, err)
	return client
}

func TestEnsureBucketCreatesPublicBucket(t *testing.T) {
	s3 := &fakeS3{}
	client := newFakeS3Client(t, s3)

	require.NoError(t, EnsureBucket(context.Background(), client, "product-images"))

	assert.True(t, s3.seen("PUT bucket"))
	assert.True(t, s3.seen("PUT policy"))

	want, err := PublicReadPolicy("product-images")
	require.NoError(t, err)
	assert.JSONEq(t, want, s3.policy)
}

func TestEnsureBucketExistingBucketGetsPolicy(t *testing.T) {
	s3 := &fakeS3{exists: true}
	client := newFakeS3Client(t, s3)

	require.NoError(t, EnsureBucket(context.Background(), client, "product-images"))

	assert.False(t, s3.seen("PUT bucket"))
	assert.True(t, s3.seen("PUT policy"))
}
