package cmd

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	PlantEmail            string
	LogisticsEmail        string
	SlotPartnerEmail      string
	MailQuery             string
	GoogleCredentialsFile string
	GoogleTokenFile       string
	CalendarID            string
}
