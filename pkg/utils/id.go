package utils

import (
	"fmt"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	base36Characters = "0123456789abcdefghijklmnopqrstuvwxyz"
	hexCharacters    = "0123456789ABCDEF"
	saleIDSuffixSize = 6
	keyGroupSize     = 6
	keyGroups        = 3
)

// GenerateSaleID gera ids no formato multi-<unix ms>-<sequência>-<6 base36>
func GenerateSaleID(now time.Time, seq int) (string, error) {
	suffix, err := gonanoid.Generate(base36Characters, saleIDSuffixSize)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("multi-%d-%d-%s", now.UnixMilli(), seq, suffix), nil
}

// GenerateLicenseKey gera XXXXXX-XXXXXX-XXXXXX em hexadecimal maiúsculo
// (três grupos de 3 bytes aleatórios)
func GenerateLicenseKey() (string, error) {
	groups := make([]string, 0, keyGroups)
	for i := 0; i < keyGroups; i++ {
		group, err := gonanoid.Generate(hexCharacters, keyGroupSize)
		if err != nil {
			return "", err
		}
		groups = append(groups, group)
	}
	return strings.Join(groups, "-"), nil
}

// MaskKey mantém só o último grupo da chave para logs
func MaskKey(key string) string {
	if len(key) <= keyGroupSize {
		return "***"
	}
	return "***" + key[len(key)-keyGroupSize:]
}
