package main

import (
	"bufio"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// 生成管理接口使用的 bcrypt 令牌哈希，输出可直接写入 ADMIN_TOKEN_HASH。
func main() {
	generate := flag.Bool("generate", false, "generate a random token instead of reading one from stdin")
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	flag.Parse()

	token, err := readToken(*generate)
	if err != nil {
		log.Fatal("读取令牌失败:", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(token), *cost)
	if err != nil {
		log.Fatal("令牌加密失败:", err)
	}

	if *generate {
		fmt.Println("token:", token)
	}
	fmt.Printf("ADMIN_TOKEN_HASH=%s\n", hash)
}

func readToken(generate bool) (string, error) {
	if generate {
		buf := make([]byte, 24)
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		return hex.EncodeToString(buf), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	token := strings.TrimSpace(line)
	if token == "" {
		return "", fmt.Errorf("empty token")
	}
	return token, nil
}
