package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPFormat(t *testing.T) {
	otp := GenerateOTP()
	require.Len(t, otp, 6)
	_, err := strconv.Atoi(otp)
	assert.NoError(t, err, "OTP must be numeric")
}

func TestGenerateCertificateIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^USK-\d{4}-[0-9A-Z]{6}$`)

	id := GenerateCertificateID()
	assert.Regexp(t, pattern, id)

	year := fmt.Sprintf("%d", time.Now().Year())
	assert.Equal(t, "USK-"+year, id[:len("USK-")+4])
}
