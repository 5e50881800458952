package cdn

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type recordedRequest struct {
	Method      string
	Path        string
	ContentType string
	Body        []byte
}

// S3StoreTestSuite runs the store against a fake S3 endpoint
type S3StoreTestSuite struct {
	suite.Suite
	server   *httptest.Server
	store    *S3Store
	mu       sync.Mutex
	requests []recordedRequest
	status   int
}

func (suite *S3StoreTestSuite) SetupTest() {
	suite.requests = nil
	suite.status = 0
	suite.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		suite.mu.Lock()
		suite.requests = append(suite.requests, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			ContentType: r.Header.Get("Content-Type"),
			Body:        body,
		})
		status := suite.status
		suite.mu.Unlock()

		if status != 0 {
			w.WriteHeader(status)
			return
		}
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("ETag", `"abc"`)
		w.WriteHeader(http.StatusOK)
	}))

	store, err := NewS3Store(context.Background(), S3Config{
		Endpoint:        suite.server.URL,
		Region:          "auto",
		AccessKeyID:     "test",
		SecretAccessKey: "test",
		Bucket:          "roster",
		PublicBaseURL:   "https://cdn.example.com/media",
	})
	suite.Require().NoError(err)
	suite.store = store
}

func (suite *S3StoreTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *S3StoreTestSuite) lastRequest() recordedRequest {
	suite.mu.Lock()
	defer suite.mu.Unlock()
	suite.Require().NotEmpty(suite.requests)
	return suite.requests[len(suite.requests)-1]
}

func (suite *S3StoreTestSuite) TestUpload() {
	data := []byte("fake-image-bytes")

	result, err := suite.store.Upload(context.Background(), FolderGallery, "team-1/photo_1", "image/png", data)

	suite.Require().NoError(err)
	suite.Equal("gallery/team-1/photo_1", result.PublicID)
	suite.Equal("https://cdn.example.com/media/gallery/team-1/photo_1", result.URL)
	suite.Equal(int64(len(data)), result.Bytes)

	req := suite.lastRequest()
	suite.Equal(http.MethodPut, req.Method)
	suite.Equal("/roster/gallery/team-1/photo_1", req.Path)
	suite.Equal("image/png", req.ContentType)
}

func (suite *S3StoreTestSuite) TestUploadFailure() {
	suite.status = http.StatusForbidden

	result, err := suite.store.Upload(context.Background(), FolderTeams, "team_x", "image/jpeg", []byte("x"))

	suite.Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "teams/team_x")
}

func (suite *S3StoreTestSuite) TestDestroy() {
	err := suite.store.Destroy(context.Background(), "gallery/team-1/photo_1")

	suite.Require().NoError(err)
	req := suite.lastRequest()
	suite.Equal(http.MethodDelete, req.Method)
	suite.Equal("/roster/gallery/team-1/photo_1", req.Path)
}

func (suite *S3StoreTestSuite) TestDestroyEmptyPublicID() {
	err := suite.store.Destroy(context.Background(), "")

	suite.NoError(err)
	suite.mu.Lock()
	defer suite.mu.Unlock()
	suite.Empty(suite.requests)
}

func TestS3StoreTestSuite(t *testing.T) {
	suite.Run(t, new(S3StoreTestSuite))
}

func TestNewS3StoreRequiresCredentials(t *testing.T) {
	_, err := NewS3Store(context.Background(), S3Config{Bucket: "roster"})
	require.Error(t, err)
}

func TestPublicURL(t *testing.T) {
	store := &S3Store{publicBaseURL: "https://cdn.example.com/"}

	assert.Equal(t, "https://cdn.example.com/avatars/a.png", store.PublicURL("avatars/a.png"))
	assert.Equal(t, "https://cdn.example.com/avatars/a.png", store.PublicURL("/avatars/a.png"))
	assert.Equal(t, "", store.PublicURL(""))
	assert.Equal(t, "", (&S3Store{}).PublicURL("x"))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "gallery/t/photo_1", Key(FolderGallery, "t/photo_1"))
	assert.Equal(t, "photo_1", Key("", "photo_1"))
}
