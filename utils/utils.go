package utils

import (
	"fmt"
	"math/rand"
	"time"
)

const certificateCodeChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOTP generates a 6-digit OTP
func GenerateOTP() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	otp := ""
	for i := 0; i < 6; i++ {
		otp += fmt.Sprintf("%d", rng.Intn(10))
	}
	return otp
}

// GenerateCertificateID builds a certificate code of the form
// USK-<year>-<6 uppercase base-36 chars>, e.g. USK-2025-7F3K2Q.
// Collisions are not checked at generation time; the code is informational
// and the unique index on the certificates table is the final arbiter.
func GenerateCertificateID() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = certificateCodeChars[rng.Intn(len(certificateCodeChars))]
	}
	return fmt.Sprintf("USK-%d-%s", time.Now().Year(), string(suffix))
}
