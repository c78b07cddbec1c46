package services

import (
	"errors"
	"evcharge/pkg/vnpay"
	"time"
)

type VNPayConfig struct {
	TmnCode          string // merchant terminal code issued by VNPay
	HashSecret       string // secret used to sign the redirect URL and verify callbacks
	PaymentURL       string // gateway base URL, e.g. the vpcpay sandbox endpoint
	DefaultReturnURL string // used when the payment request carries no return URL
}

type VNPayServiceInterface interface {
	CreatePaymentURL(amount int64, orderInfo, txnRef, returnURL string) (string, error)
	VerifyCallback(params map[string]string) bool
	ResponseMessage(code string) string
}

func NewVNPayService(cfg VNPayConfig) (VNPayServiceInterface, error) {
	if cfg.TmnCode == "" || cfg.HashSecret == "" || cfg.PaymentURL == "" {
		return nil, errors.New("missing VNPay credentials")
	}
	return &vnPayService{cfg: cfg}, nil
}

type vnPayService struct {
	cfg VNPayConfig
}

func (s *vnPayService) CreatePaymentURL(amount int64, orderInfo, txnRef, returnURL string) (string, error) {
	if returnURL == "" {
		returnURL = s.cfg.DefaultReturnURL
	}
	return vnpay.BuildPaymentURL(
		s.cfg.PaymentURL,
		s.cfg.TmnCode,
		s.cfg.HashSecret,
		amount,
		orderInfo,
		txnRef,
		returnURL,
		time.Now(),
	)
}

func (s *vnPayService) VerifyCallback(params map[string]string) bool {
	return vnpay.VerifyCallback(params, s.cfg.HashSecret)
}

func (s *vnPayService) ResponseMessage(code string) string {
	return vnpay.ResponseMessage(code)
}
