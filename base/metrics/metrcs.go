/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- Error: *.failed
- Success: *.confirmed
*/
package metrics

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/scalp-empire/royalties/base/env"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client with pkgName as key prefix
func New(pkgName string) Service {
	appName := viper.GetString("app_name")
	if appName == "" {
		appName = env.AppName()
	}
	return &Metrics{
		pkgName: pkgName,
		datadog: DDMetrics{
			ddTags: []string{
				"host:", // remove unused host tag
				"app:" + appName,
			},
		},
	}
}

// Metrics prefixes keys and isolates panics raised while tagging.
type Metrics struct {
	pkgName string
	datadog DDMetrics
}

func (mt *Metrics) bumpSumPanic(key, tag string) {
	mt.datadog.BumpSum(key, 1, 1, "tag", tag)
}

func (mt *Metrics) recoverInto(name, key string, tags []string) {
	if err := recover(); err != nil {
		mt.bumpSumPanic(name, mt.pkgName+`.`+key+"#"+strings.Join(tags, "#"))
	}
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer mt.recoverInto("bumpavg.panic", key, tags)
	mt.datadog.BumpAvg(mt.pkgName+`.`+key, val, 1, tags...)
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.recoverInto("bumpsum.panic", key, tags)
	mt.datadog.BumpSum(mt.pkgName+`.`+key, val, 1, tags...)
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.recoverInto("bumphistogram.panic", key, tags)
	mt.datadog.BumpHistogram(mt.pkgName+`.`+key, val, 1, tags...)
}

// BumpTime times a block of code:
//
//	defer s.BumpTime("payment.time").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	defer mt.recoverInto("bumptime.panic", key, tags)
	return mt.datadog.BumpTime(mt.pkgName+`.`+key, 1, tags...)
}

// Nop discards everything
type Nop struct{}

func (Nop) BumpAvg(string, float64, ...string)       {}
func (Nop) BumpSum(string, float64, ...string)       {}
func (Nop) BumpHistogram(string, float64, ...string) {}
func (Nop) BumpTime(string, ...string) Ender          { return nopEnder{} }

type nopEnder struct{}

func (nopEnder) End() {}
