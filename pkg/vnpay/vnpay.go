// Package vnpay implements the VNPay redirect protocol: building signed
// payment URLs and verifying callback/IPN signatures. All signing runs over
// the canonical sorted "name=value" form of the request parameters.
package vnpay

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	Version    = "2.1.0"
	CommandPay = "pay"
	CurrCode   = "VND"
	OrderType  = "other"
	Locale     = "vn"

	SecureHashField     = "vnp_SecureHash"
	secureHashTypeField = "vnp_SecureHashType"

	timeFormat   = "20060102150405"
	expireWindow = 15 * time.Minute
)

// VNPay timestamps are civil time in UTC+7 regardless of server locale.
var gatewayLoc = time.FixedZone("ICT", 7*3600)

// BuildPaymentURL assembles the redirect URL for one payment attempt.
// amount is in VND major units; the gateway wants it scaled by 100.
// createdAt pins the create/expire timestamps so callers stay reproducible.
func BuildPaymentURL(baseURL, tmnCode, secret string, amount int64, orderInfo, txnRef, returnURL string, createdAt time.Time) (string, error) {
	if amount < 0 {
		return "", fmt.Errorf("vnpay: negative amount %d", amount)
	}
	if tmnCode == "" || secret == "" {
		return "", fmt.Errorf("vnpay: merchant code and secret are required")
	}

	created := createdAt.In(gatewayLoc)
	params := map[string]string{
		"vnp_Version":    Version,
		"vnp_Command":    CommandPay,
		"vnp_TmnCode":    tmnCode,
		"vnp_Amount":     strconv.FormatInt(amount*100, 10),
		"vnp_CurrCode":   CurrCode,
		"vnp_TxnRef":     txnRef,
		"vnp_OrderInfo":  orderInfo,
		"vnp_OrderType":  OrderType,
		"vnp_Locale":     Locale,
		"vnp_ReturnUrl":  returnURL,
		"vnp_CreateDate": created.Format(timeFormat),
		"vnp_ExpireDate": created.Add(expireWindow).Format(timeFormat),
	}

	hashData, query := canonicalize(params, true)
	signature := Sign(secret, hashData)

	// The signature is appended after the sorted fields, key left unencoded.
	return baseURL + "?" + query + "&" + SecureHashField + "=" + signature, nil
}

// VerifyCallback recomputes the signature over the received parameters and
// compares it against the embedded vnp_SecureHash in constant time. It never
// errors on a merely-invalid signature; any mismatch, a missing signature
// field, or an empty parameter set just yields false.
func VerifyCallback(params map[string]string, secret string) bool {
	received := params[SecureHashField]
	if received == "" {
		return false
	}

	rest := make(map[string]string, len(params))
	for k, v := range params {
		if k == SecureHashField || k == secureHashTypeField {
			continue
		}
		rest[k] = v
	}
	if len(rest) == 0 {
		return false
	}

	// The hash runs over the values exactly as received; the codec never
	// re-encodes inbound values.
	hashData, _ := canonicalize(rest, false)
	expected := Sign(secret, hashData)

	return hmac.Equal([]byte(expected), []byte(strings.ToLower(received)))
}

// Sign returns lowercase hex HMAC-SHA512 of data under secret.
func Sign(secret, data string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// canonicalize drops empty values, sorts field names byte-wise and joins
// "name=value" pairs with '&'. With encode set, values (and keys, for the
// query string) are percent-encoded exactly as they appear on the wire.
// It returns the hash input and the matching query string.
func canonicalize(params map[string]string, encode bool) (hashData string, query string) {
	names := make([]string, 0, len(params))
	for name, value := range params {
		if value == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var hb, qb strings.Builder
	for i, name := range names {
		if i > 0 {
			hb.WriteByte('&')
			qb.WriteByte('&')
		}
		value := params[name]
		if encode {
			value = url.QueryEscape(value)
		}
		hb.WriteString(name + "=" + value)
		qb.WriteString(url.QueryEscape(name) + "=" + value)
	}
	return hb.String(), qb.String()
}

var responseMessages = map[string]string{
	"00": "SUCCESS",
	"07": "Funds deducted successfully, transaction pending further processing",
	"09": "Transaction failed: card or account not registered for internet banking",
	"10": "Transaction failed: card or account details verified incorrectly more than 3 times",
	"11": "Transaction failed: payment window expired",
	"12": "Transaction failed: card or account is locked",
	"13": "Transaction failed: payment password entered incorrectly too many times",
	"24": "Transaction failed: cancelled by customer",
	"51": "Transaction failed: insufficient account balance",
	"65": "Transaction failed: daily transaction limit exceeded",
	"75": "Payment bank under maintenance",
	"79": "Transaction failed: payment password entered incorrectly too many times",
}

const genericFailureMessage = "Transaction failed"

// ResponseMessage maps a gateway response code to a human-readable outcome.
// Unrecognized codes fall back to a generic failure message.
func ResponseMessage(code string) string {
	if msg, ok := responseMessages[code]; ok {
		return msg
	}
	return genericFailureMessage
}
