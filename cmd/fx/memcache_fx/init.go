package memcache_fx

import (
	mem "evcharge/pkg/memcache"
	"go.uber.org/fx"
)

var Module = fx.Provide(provideMemcacheClient)

func provideMemcacheClient() mem.VerificationCodeStore {
	return mem.NewVerificationCodes()
}
