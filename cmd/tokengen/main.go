package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func main() {
	secret := flag.String("secret", os.Getenv("MILMON_JWT_SECRET"), "HMAC secret the server was started with")
	subject := flag.String("subject", "operator", "token subject")
	ttl := flag.Duration("ttl", 30*24*time.Hour, "token lifetime")
	flag.Parse()

	if *secret == "" {
		log.Fatal("no secret: pass -secret or set MILMON_JWT_SECRET")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  *subject,
		"role": "operator",
		"iat":  now.Unix(),
		"exp":  now.Add(*ttl).Unix(),
	})

	signed, err := token.SignedString([]byte(*secret))
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}

	fmt.Println(signed)
}
