package smsbroadcast

import "time"

const DefaultURL = "https://api.smsbroadcast.com.au/api-adv.php"

type Config struct {
	URL      string        `mapstructure:"url"`
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	From     string        `mapstructure:"from"`
	Timeout  time.Duration `mapstructure:"timeout"`
}
