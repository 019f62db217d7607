package cmd

type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	DeliveryCharge string
	ReminderAge    string
	RedisAddr      string
	LogLevel       string
}
