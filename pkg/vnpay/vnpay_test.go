package vnpay

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "VNPAYSECRETKEY123"

func buildTestURL(t *testing.T) string {
	t.Helper()

	createdAt := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	paymentURL, err := BuildPaymentURL(
		"https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
		"TMN001",
		testSecret,
		37400,
		"EV charging invoice - session abc",
		"3f1c9b2e-0000-0000-0000-000000000001",
		"https://app.example.com/payment/return",
		createdAt,
	)
	require.NoError(t, err)
	return paymentURL
}

// callbackParams splits the query into wire-form name/value pairs without
// decoding, mirroring what the gateway echoes back and signs over.
func callbackParams(t *testing.T, paymentURL string) map[string]string {
	t.Helper()

	parsed, err := url.Parse(paymentURL)
	require.NoError(t, err)

	params := make(map[string]string)
	for _, pair := range strings.Split(parsed.RawQuery, "&") {
		name, value, ok := strings.Cut(pair, "=")
		require.True(t, ok)
		params[name] = value
	}
	return params
}

func TestBuildPaymentURLFields(t *testing.T) {
	paymentURL := buildTestURL(t)
	params := callbackParams(t, paymentURL)

	assert.Equal(t, "2.1.0", params["vnp_Version"])
	assert.Equal(t, "pay", params["vnp_Command"])
	assert.Equal(t, "TMN001", params["vnp_TmnCode"])
	assert.Equal(t, "VND", params["vnp_CurrCode"])
	assert.Equal(t, "other", params["vnp_OrderType"])
	assert.Equal(t, "vn", params["vnp_Locale"])
	assert.Equal(t, "3740000", params["vnp_Amount"], "amount is scaled by 100")
	assert.NotEmpty(t, params["vnp_SecureHash"])

	// 10:30 UTC is 17:30 in UTC+7; expiry is a 15 minute window.
	assert.Equal(t, "20250314173000", params["vnp_CreateDate"])
	assert.Equal(t, "20250314174500", params["vnp_ExpireDate"])
}

func TestBuildPaymentURLDeterministic(t *testing.T) {
	assert.Equal(t, buildTestURL(t), buildTestURL(t))
}

func TestBuildPaymentURLRejectsNegativeAmount(t *testing.T) {
	_, err := BuildPaymentURL("https://x", "TMN001", testSecret, -1, "", "ref", "", time.Now())
	assert.Error(t, err)
}

func TestVerifyCallbackRoundTrip(t *testing.T) {
	params := callbackParams(t, buildTestURL(t))
	assert.True(t, VerifyCallback(params, testSecret))
}

func TestVerifyCallbackRejectsTampering(t *testing.T) {
	params := callbackParams(t, buildTestURL(t))
	params["vnp_Amount"] = "100"
	assert.False(t, VerifyCallback(params, testSecret))
}

func TestVerifyCallbackRejectsWrongSecret(t *testing.T) {
	params := callbackParams(t, buildTestURL(t))
	assert.False(t, VerifyCallback(params, "some-other-secret"))
}

func TestVerifyCallbackMissingSignature(t *testing.T) {
	params := callbackParams(t, buildTestURL(t))
	delete(params, SecureHashField)
	assert.False(t, VerifyCallback(params, testSecret))
}

func TestVerifyCallbackEmptyParams(t *testing.T) {
	assert.False(t, VerifyCallback(map[string]string{}, testSecret))
	assert.False(t, VerifyCallback(map[string]string{SecureHashField: "abc"}, testSecret))
}

func TestVerifyCallbackIgnoresHashTypeAndEmptyValues(t *testing.T) {
	params := callbackParams(t, buildTestURL(t))
	params["vnp_SecureHashType"] = "HMACSHA512"
	params["vnp_BankCode"] = ""
	assert.True(t, VerifyCallback(params, testSecret))
}

func TestVerifyCallbackAcceptsUppercaseSignature(t *testing.T) {
	params := callbackParams(t, buildTestURL(t))
	params[SecureHashField] = strings.ToUpper(params[SecureHashField])
	assert.True(t, VerifyCallback(params, testSecret))
}

func TestSignIsLowercaseHex(t *testing.T) {
	sig := Sign(testSecret, "vnp_Amount=100&vnp_TxnRef=abc")
	assert.Len(t, sig, 128)
	assert.Equal(t, strings.ToLower(sig), sig)
	assert.Equal(t, sig, Sign(testSecret, "vnp_Amount=100&vnp_TxnRef=abc"))
}

func TestResponseMessage(t *testing.T) {
	assert.Equal(t, "SUCCESS", ResponseMessage("00"))
	assert.Equal(t, "Transaction failed: cancelled by customer", ResponseMessage("24"))
	assert.Equal(t, "Transaction failed: payment window expired", ResponseMessage("11"))
	assert.Equal(t, "Transaction failed", ResponseMessage("ZZ"))
	assert.Equal(t, "Transaction failed", ResponseMessage(""))
}
