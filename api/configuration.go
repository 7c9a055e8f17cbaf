package api

import "time"

type Configuration struct {
	Env            string
	Port           string
	AppUrl         string
	DefaultTimeout time.Duration
}
