package dto

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func bindJSON(t *testing.T, obj interface{}, body string) error {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c.ShouldBindJSON(obj)
}

func bindForm(t *testing.T, obj interface{}, values url.Values) error {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.ShouldBind(obj)
}

func TestTextFieldsRejectBlank(t *testing.T) {
	// 纯空白输入和空字符串一样被绑定层拦下
	var comment CommentCreateRequest
	assert.Error(t, bindJSON(t, &comment, `{"content":"   "}`))
	assert.Error(t, bindJSON(t, &CommentCreateRequest{}, `{"content":""}`))
	assert.NoError(t, bindJSON(t, &CommentCreateRequest{}, `{"content":"不错"}`))

	assert.Error(t, bindJSON(t, &TweetCreateRequest{}, `{"content":"\t\n"}`))
	assert.Error(t, bindJSON(t, &TweetUpdateRequest{}, `{"content":" "}`))

	assert.Error(t, bindJSON(t, &PlaylistCreateRequest{}, `{"name":"  ","description":"d"}`))
	assert.Error(t, bindJSON(t, &PlaylistUpdateRequest{}, `{"name":"n","description":"  "}`))

	assert.Error(t, bindJSON(t, &UpdateAccountRequest{}, `{"fullName":"   ","email":"a@b.com"}`))
	assert.NoError(t, bindJSON(t, &UpdateAccountRequest{}, `{"fullName":"张三","email":"a@b.com"}`))
}

func TestVideoFormFieldsRejectBlank(t *testing.T) {
	var req PublishVideoRequest
	assert.Error(t, bindForm(t, &req, url.Values{"title": {"   "}, "description": {"d"}}))
	assert.Error(t, bindForm(t, &UpdateVideoRequest{}, url.Values{"title": {"t"}, "description": {"\t"}}))
	assert.NoError(t, bindForm(t, &PublishVideoRequest{}, url.Values{"title": {"t"}, "description": {"d"}}))
}

func TestRegisterRejectsBlankFields(t *testing.T) {
	valid := url.Values{
		"fullName": {"张三"},
		"email":    {"a@b.com"},
		"username": {"zhangsan"},
		"password": {"password123"},
	}
	assert.NoError(t, bindForm(t, &RegisterRequest{}, valid))

	for field, blank := range map[string]string{
		"fullName": "   ",
		"username": "   ",
		"password": "      ",
	} {
		bad := url.Values{}
		for k, v := range valid {
			bad[k] = v
		}
		bad.Set(field, blank)
		assert.Error(t, bindForm(t, &RegisterRequest{}, bad), field)
	}
}
