package game

//go:generate go tool mockgen -destination=./mocks/game_mock.go -package=mocks . AudioPlayer,LinkOpener

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/pkg/browser"
)

// LinkOpener 将 URL 交给操作系统打开
type LinkOpener interface {
	OpenURL(url string) error
}

// BrowserOpener 使用系统浏览器或邮件客户端打开链接
type BrowserOpener struct{}

// NewBrowserOpener 返回正式环境使用的 LinkOpener
func NewBrowserOpener() *BrowserOpener {
	return &BrowserOpener{}
}

// OpenURL 调用系统默认程序打开 target
func (BrowserOpener) OpenURL(target string) error {
	log.Printf("[LinkOpener] Opening %s", target)
	if err := browser.OpenURL(target); err != nil {
		return fmt.Errorf("open %s: %w", target, err)
	}
	return nil
}

// MailtoURL 构建带可选主题和正文的 mailto: 链接。
// 空格编码为 %20，因为邮件客户端不会解码 '+'。
func MailtoURL(address, subject, body string) string {
	link := "mailto:" + address
	var params []string
	if subject != "" {
		params = append(params, "subject="+escapeMailto(subject))
	}
	if body != "" {
		params = append(params, "body="+escapeMailto(body))
	}
	if len(params) > 0 {
		link += "?" + strings.Join(params, "&")
	}
	return link
}

func escapeMailto(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
