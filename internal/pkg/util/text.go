package util

import (
	"strings"
)

const excerptRuneLimit = 150

// DeriveExcerpt 在故事未提供摘要时，从正文派生一个短摘要。只在读取时计算，从不落库。
func DeriveExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) > excerptRuneLimit {
		runes = runes[:excerptRuneLimit]
	}
	return string(runes) + "..."
}

// SplitParagraphs 按连续两个换行切分正文为段落，丢弃空白片段
func SplitParagraphs(content string) []string {
	parts := strings.Split(content, "\n\n")
	paragraphs := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		paragraphs = append(paragraphs, p)
	}
	return paragraphs
}
