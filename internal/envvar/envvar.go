package envvar

import (
	"fmt"
	"os"
	"strings"
)

// Vars is a bag of environment variables. It can be captured from
// the real process environment or built from a map in tests.
type Vars struct {
	vars map[string]string
}

func (this *Vars) FromEnv() {
	environ := os.Environ()
	this.vars = make(map[string]string, len(environ))
	for _, kv := range environ {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) < 2 {
			continue
		}
		this.vars[parts[0]] = parts[1]
	}
}

func (this *Vars) FromMap(m map[string]string) {
	this.vars = make(map[string]string, len(m))
	for k, v := range m {
		this.vars[k] = v
	}
}

func (this *Vars) ToMap() map[string]string {
	m := make(map[string]string, len(this.vars))
	for k, v := range this.vars {
		m[k] = v
	}
	return m
}

func (this *Vars) Lookup(key string) (string, bool) {
	v, ok := this.vars[key]
	return v, ok
}

func (this *Vars) Get(key string) string {
	return this.vars[key]
}

func (this *Vars) GetOr(key string, alternative string) string {
	v, ok := this.vars[key]
	if ok {
		return v
	}
	return alternative
}

func (this *Vars) GetForApp(appName, varName string) string {
	return this.Get(AppKey(appName, varName))
}

func (this *Vars) GetForAppOr(appName, varName string, alternative string) string {
	return this.GetOr(AppKey(appName, varName), alternative)
}

// AppKey builds an app-prefixed environment variable name,
// e.g. AppKey("shopkit", "LOG_LEVEL") = "SHOPKIT_LOG_LEVEL".
func AppKey(appName, varName string) string {
	appNameFiltered := strings.TrimSpace(appName)
	if appNameFiltered != appName {
		panic("whitespace in app name is not allowed")
	}
	if appNameFiltered == "" {
		panic("empty app name is not allowed")
	}

	prefix := appName
	prefix = strings.ReplaceAll(prefix, "-", "_")
	prefix = strings.ReplaceAll(prefix, " ", "_")
	prefix = strings.ToUpper(prefix)
	return fmt.Sprintf("%s_%s", prefix, varName)
}
