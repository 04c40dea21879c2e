package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 按 face 将 s 拆分为宽度不超过 maxWidth 像素的多行。
// 在空格处换行；单个单词超过 maxWidth 时按字符拆分。
func WrapText(s string, face *text.GoTextFace, maxWidth float64) []string {
	if face == nil {
		return []string{s}
	}
	return WrapWith(s, maxWidth, func(line string) float64 {
		w, _ := text.Measure(line, face, 0)
		return w
	})
}

// WrapWith 与 WrapText 相同，但由调用方提供宽度测量函数
func WrapWith(s string, maxWidth float64, measure func(string) float64) []string {
	if s == "" || maxWidth <= 0 || measure(s) <= maxWidth {
		return []string{s}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(s) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		if measure(word) <= maxWidth {
			current = word
			continue
		}

		// 超长单词在溢出处拆分
		for word != "" {
			n := fitPrefix(word, maxWidth, measure)
			if n == len(word) {
				current = word
				break
			}
			lines = append(lines, word[:n])
			word = word[n:]
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// fitPrefix 返回 word 能放下的最长前缀的字节长度，
// 至少包含一个字符。
func fitPrefix(word string, maxWidth float64, measure func(string) float64) int {
	_, first := utf8.DecodeRuneInString(word)
	n := first
	for n < len(word) {
		_, size := utf8.DecodeRuneInString(word[n:])
		if measure(word[:n+size]) > maxWidth {
			break
		}
		n += size
	}
	return n
}
