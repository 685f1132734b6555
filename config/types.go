package config

type config struct {
	Server server `yaml:"server" mapstructure:"server"`
	Mysql  mysql  `yaml:"mysql" mapstructure:"mysql"`
	Redis  redis  `yaml:"redis" mapstructure:"redis"`
	Jwt    jwt    `yaml:"jwt" mapstructure:"jwt"`
	Id     id     `yaml:"id" mapstructure:"id"`
}

type server struct {
	Addr         string   `yaml:"addr"`
	AllowOrigins []string `yaml:"allow_origins" mapstructure:"allow_origins"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type jwt struct {
	Secret        string `yaml:"secret"`
	ExpireMinutes int    `yaml:"expire_minutes" mapstructure:"expire_minutes"`
}

type id struct {
	WorkerID     int64 `yaml:"worker_id" mapstructure:"worker_id"`
	DatacenterID int64 `yaml:"datacenter_id" mapstructure:"datacenter_id"`
}
