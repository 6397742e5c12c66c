package utils

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid"
)

// 批次编码使用的字符表与长度
const (
	codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	codeLength   = 16
)

// GenerateSampleCode 生成16位化验批次编码
func GenerateSampleCode() (string, error) {
	return gonanoid.Generate(codeAlphabet, codeLength)
}

// GenerateSampleCodeWithPrefix 生成带前缀的批次编码
func GenerateSampleCodeWithPrefix(prefix string) (string, error) {
	code, err := GenerateSampleCode()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", prefix, code), nil
}

// ValidateSampleCode 验证批次编码格式
func ValidateSampleCode(code string) bool {
	if len(code) != codeLength {
		return false
	}
	for _, char := range code {
		if !strings.ContainsRune(codeAlphabet, char) {
			return false
		}
	}
	return true
}
