package utils

import (
	"errors"
	"sync"
	"time"
)

const (
	epoch            = int64(1577836800000) // 起始时间戳 (2020-01-01)
	timestampBits    = uint(41)
	datacenterBits   = uint(5)
	workerBits       = uint(5)
	sequenceBits     = uint(12)
	maxDatacenterID  = int64(-1 ^ (-1 << datacenterBits))
	maxWorkerID      = int64(-1 ^ (-1 << workerBits))
	maxSequence      = int64(-1 ^ (-1 << sequenceBits))
	timestampShift   = sequenceBits + workerBits + datacenterBits
	datacenterShift  = sequenceBits + workerBits
	workerShift      = sequenceBits
)

// Snowflake 雪花算法ID生成器, 供视频/播放列表/公告等实体主键使用
type Snowflake struct {
	mutex        sync.Mutex
	lastTime     int64
	workerID     int64
	datacenterID int64
	sequence     int64
}

func NewSnowflake(workerID, datacenterID int64) (*Snowflake, error) {
	if workerID < 0 || workerID > maxWorkerID {
		return nil, errors.New("worker ID out of range")
	}
	if datacenterID < 0 || datacenterID > maxDatacenterID {
		return nil, errors.New("datacenter ID out of range")
	}
	return &Snowflake{workerID: workerID, datacenterID: datacenterID}, nil
}

func (s *Snowflake) GenerateID() int64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	currentTime := time.Now().UnixNano() / 1e6
	if currentTime < s.lastTime {
		// 时钟回拨, 等待
		time.Sleep(time.Duration(s.lastTime-currentTime) * time.Millisecond)
		currentTime = time.Now().UnixNano() / 1e6
	}

	if currentTime == s.lastTime {
		s.sequence = (s.sequence + 1) & maxSequence
		if s.sequence == 0 {
			for currentTime <= s.lastTime {
				currentTime = time.Now().UnixNano() / 1e6
			}
		}
	} else {
		s.sequence = 0
	}

	s.lastTime = currentTime
	return ((currentTime - epoch) << timestampShift) |
		(s.datacenterID << datacenterShift) |
		(s.workerID << workerShift) |
		s.sequence
}

// GlobalSnowflake 全局实例, main中初始化
var GlobalSnowflake *Snowflake

func InitSnowflake(workerID, datacenterID int64) error {
	var err error
	GlobalSnowflake, err = NewSnowflake(workerID, datacenterID)
	return err
}

// NewID 生成实体ID; 未初始化时退化为默认配置
func NewID() int64 {
	if GlobalSnowflake == nil {
		_ = InitSnowflake(1, 1)
	}
	return GlobalSnowflake.GenerateID()
}
