package utils

import (
	"crypto/rand"
	"math/big"
)

const randomCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomString 生成一个安全的随机字符串，用于上传文件的唯一命名
func RandomString(length int) string {
	result := make([]byte, length)
	max := big.NewInt(int64(len(randomCharset)))

	for i := range result {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic("generate random string failed")
		}
		result[i] = randomCharset[num.Int64()]
	}

	return string(result)
}
