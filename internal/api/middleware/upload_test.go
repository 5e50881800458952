package middleware_test

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"coaching-roster-backend/internal/api/middleware"
	"coaching-roster-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// UploadMiddlewareTestSuite tests ImageUpload
type UploadMiddlewareTestSuite struct {
	suite.Suite
	httpSuite *testutils.HTTPTestSuite
	png       []byte
}

func (suite *UploadMiddlewareTestSuite) SetupTest() {
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.png = testutils.PNGBytes(suite.T(), 8, 8)

	echo := func(c *gin.Context) {
		file := middleware.GetUploadedFile(c)
		if file == nil {
			c.JSON(http.StatusOK, gin.H{"file": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"file": true, "name": file.Filename, "type": file.ContentType, "size": len(file.Data)})
	}

	router := suite.httpSuite.Router
	router.POST("/optional", middleware.ImageUpload(middleware.UploadOptions{Field: "avatar"}), echo)
	router.POST("/required", middleware.ImageUpload(middleware.UploadOptions{Field: "photo", Required: true}), echo)
	router.POST("/small", middleware.ImageUpload(middleware.UploadOptions{Field: "photo", MaxBytes: 1000}), echo)
}

func (suite *UploadMiddlewareTestSuite) send(path string, fields map[string]string, files ...testutils.MultipartFile) map[string]interface{} {
	w := suite.httpSuite.Serve(testutils.NewMultipartRequest(suite.T(), http.MethodPost, path, fields, files...))
	var body map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), w, &body)
	body["status"] = float64(w.Code)
	return body
}

func (suite *UploadMiddlewareTestSuite) TestAcceptsImage() {
	body := suite.send("/optional", nil, testutils.MultipartFile{Field: "avatar", Filename: "my photo.PNG", ContentType: "image/png", Data: suite.png})

	suite.Equal(float64(http.StatusOK), body["status"])
	suite.Equal(true, body["file"])
	suite.Equal("my_photo.PNG", body["name"])
	suite.Equal("image/png", body["type"])
	suite.Equal(float64(len(suite.png)), body["size"])
}

func (suite *UploadMiddlewareTestSuite) TestOptionalWithoutFile() {
	w := suite.httpSuite.MakeRequest(http.MethodPost, "/optional", map[string]string{"name": "x"})
	suite.Equal(http.StatusOK, w.Code)

	body := suite.send("/optional", map[string]string{"name": "x"})
	suite.Equal(float64(http.StatusOK), body["status"])
	suite.Equal(false, body["file"])
}

func (suite *UploadMiddlewareTestSuite) TestRequiredWithoutFile() {
	w := suite.httpSuite.MakeRequest(http.MethodPost, "/required", map[string]string{"name": "x"})
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "multipart/form-data")

	body := suite.send("/required", map[string]string{"name": "x"})
	suite.Equal(float64(http.StatusBadRequest), body["status"])
	suite.Contains(body["error"], "no file uploaded")
}

func (suite *UploadMiddlewareTestSuite) TestRejections() {
	testCases := []struct {
		name    string
		path    string
		files   []testutils.MultipartFile
		status  int
		message string
	}{
		{
			name:    "Unsupported type",
			path:    "/optional",
			files:   []testutils.MultipartFile{{Field: "avatar", Filename: "a.gif", ContentType: "image/gif", Data: []byte("GIF89a")}},
			status:  http.StatusBadRequest,
			message: "unsupported file type",
		},
		{
			name:    "Content does not match",
			path:    "/optional",
			files:   []testutils.MultipartFile{{Field: "avatar", Filename: "a.png", ContentType: "image/png", Data: []byte("just some text")}},
			status:  http.StatusBadRequest,
			message: "does not match declared type",
		},
		{
			name:    "Wrong extension",
			path:    "/optional",
			files:   []testutils.MultipartFile{{Field: "avatar", Filename: "a.jpg", ContentType: "image/png", Data: suite.png}},
			status:  http.StatusBadRequest,
			message: "extension",
		},
		{
			name:    "Unexpected field",
			path:    "/optional",
			files:   []testutils.MultipartFile{{Field: "avatar", Filename: "a.png", ContentType: "image/png", Data: suite.png}, {Field: "logo", Filename: "b.png", ContentType: "image/png", Data: suite.png}},
			status:  http.StatusBadRequest,
			message: "unexpected file field",
		},
		{
			name:    "Two files",
			path:    "/optional",
			files:   []testutils.MultipartFile{{Field: "avatar", Filename: "a.png", ContentType: "image/png", Data: suite.png}, {Field: "avatar", Filename: "b.png", ContentType: "image/png", Data: suite.png}},
			status:  http.StatusBadRequest,
			message: "only one file",
		},
		{
			name:    "Too large",
			path:    "/small",
			files:   []testutils.MultipartFile{{Field: "photo", Filename: "a.png", ContentType: "image/png", Data: bytes.Repeat([]byte("x"), 5000)}},
			status:  http.StatusRequestEntityTooLarge,
			message: "too large",
		},
		{
			name:    "Too many pixels",
			path:    "/optional",
			files:   []testutils.MultipartFile{{Field: "avatar", Filename: "wide.png", ContentType: "image/png", Data: testutils.PNGBytes(suite.T(), middleware.MaxImageDimension+1, 1)}},
			status:  http.StatusBadRequest,
			message: "image is too large",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			body := suite.send(tc.path, nil, tc.files...)

			suite.Equal(float64(tc.status), body["status"])
			suite.Contains(body["error"], tc.message)
		})
	}
}

func (suite *UploadMiddlewareTestSuite) TestRateLimit() {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	limiter := middleware.NewUploadLimiter(2, func() time.Time { return now })
	suite.httpSuite.Router.POST("/limited", middleware.ImageUpload(middleware.UploadOptions{Field: "photo", Limiter: limiter}), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{})
	})
	file := testutils.MultipartFile{Field: "photo", Filename: "a.png", ContentType: "image/png", Data: suite.png}

	suite.Equal(float64(http.StatusCreated), suite.send("/limited", nil, file)["status"])
	suite.Equal(float64(http.StatusCreated), suite.send("/limited", nil, file)["status"])
	suite.Equal(float64(http.StatusTooManyRequests), suite.send("/limited", nil, file)["status"])

	now = now.Add(30 * time.Second)
	suite.Equal(float64(http.StatusCreated), suite.send("/limited", nil, file)["status"])
}

func TestUploadMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(UploadMiddlewareTestSuite))
}
