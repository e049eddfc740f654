package prompts

import (
	"Wellspring/internal/api/config"
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// RemoteSource 可选的远端生成服务，配置了 remote_url 才启用
// 生成失败时调用方回退到本地题库，不阻塞播种
type RemoteSource struct {
	client *resty.Client
	url    string
	key    string
}

func NewRemoteSource(cfg config.PromptConfig) *RemoteSource {
	return &RemoteSource{
		client: resty.New().SetTimeout(10 * time.Second),
		url:    cfg.RemoteURL,
		key:    cfg.RemoteKey,
	}
}

func (s *RemoteSource) Enabled() bool {
	return s.url != ""
}

// Generate 请求远端为指定日期生成一条题目
func (s *RemoteSource) Generate(ctx context.Context, date string) (string, error) {
	var out struct {
		Text string `json:"text"`
	}

	req := s.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"date": date}).
		SetResult(&out)
	if s.key != "" {
		req.SetAuthToken(s.key)
	}

	resp, err := req.Post(s.url)
	if err != nil {
		return "", errors.Wrap(err, "remote prompt request")
	}
	if !resp.IsSuccess() {
		return "", errors.Errorf("remote prompt request: status %d", resp.StatusCode())
	}
	if out.Text == "" {
		return "", errors.New("remote prompt request: empty text")
	}
	return out.Text, nil
}
