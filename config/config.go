package config

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

// 使用Viper读取配置文件, 支持热更新且对大小写不敏感
func Init() {
	viper.SetConfigType("yaml")
	viper.SetConfigName("config.yml")

	// 兼容从仓库根目录或cmd目录下启动
	configPaths := []string{
		"./config",
		"../config",
		"../../config",
		".",
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	viper.SetDefault("server.addr", "0.0.0.0:8888")
	viper.SetDefault("mysql.charset", "utf8mb4")
	viper.SetDefault("jwt.expire_minutes", 60*24)
	viper.SetDefault("id.worker_id", 1)
	viper.SetDefault("id.datacenter_id", 1)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Errorf("config file not found: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
		return
	}
	logrus.Infof("Successfully read config file: %s", viper.ConfigFileUsed())

	ConfigInfo.Server.Addr = viper.GetString("server.addr")
	ConfigInfo.Server.AllowOrigins = viper.GetStringSlice("server.allow_origins")

	ConfigInfo.Mysql.Addr = viper.GetString("mysql.addr")
	ConfigInfo.Mysql.Database = viper.GetString("mysql.database")
	ConfigInfo.Mysql.Username = viper.GetString("mysql.username")
	ConfigInfo.Mysql.Password = viper.GetString("mysql.password")
	ConfigInfo.Mysql.Charset = viper.GetString("mysql.charset")

	ConfigInfo.Redis.Addr = viper.GetString("redis.addr")
	ConfigInfo.Redis.Password = viper.GetString("redis.password")
	ConfigInfo.Redis.DB = viper.GetInt("redis.db")

	ConfigInfo.Jwt.Secret = viper.GetString("jwt.secret")
	ConfigInfo.Jwt.ExpireMinutes = viper.GetInt("jwt.expire_minutes")

	ConfigInfo.Id.WorkerID = viper.GetInt64("id.worker_id")
	ConfigInfo.Id.DatacenterID = viper.GetInt64("id.datacenter_id")
}
