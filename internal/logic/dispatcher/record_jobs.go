package dispatcher

import (
	"dex-idl-sol/internal/logic/core"
	"dex-idl-sol/internal/pkg/logger"
	"dex-idl-sol/internal/pkg/mq"
	"dex-idl-sol/internal/pkg/utils"
)

// BuildRecordJobs 为每条记录构造一个 KafkaJob。
// 分区由 program id 决定，同一程序的记录落在同一分区；返回的 jobs 按分区聚合。
// 编码失败的记录记日志后跳过，skipped 返回其数量。
func BuildRecordJobs(
	records []*core.Record,
	topic string,
	partitions int,
	encoding string,
) (jobs []*mq.KafkaJob, skipped int) {
	if len(records) == 0 {
		return nil, 0
	}
	if partitions <= 0 {
		partitions = 1
	}

	// 按分区初始化 buckets
	buckets := make([][]*mq.KafkaJob, partitions)
	capacity := utils.CalcCapPerPartition(len(records), partitions, 4)
	for i := range buckets {
		buckets[i] = make([]*mq.KafkaJob, 0, capacity)
	}

	for _, rec := range records {
		value, err := EncodeRecord(rec, encoding)
		if err != nil {
			logger.Errorf("[Dispatcher:BuildRecordJobs] 记录编码失败: %v, tx=%s, program=%s, name=%s",
				err, rec.TxHash, rec.Program, rec.Name)
			skipped++
			continue
		}
		key := rec.ProgramID
		pid := utils.PartitionHashBytes(key[:], uint32(partitions))
		buckets[pid] = append(buckets[pid], &mq.KafkaJob{
			Topic:     topic,
			Partition: int32(pid),
			Key:       key[:],
			Value:     value,
		})
	}

	jobs = make([]*mq.KafkaJob, 0, len(records)-skipped)
	for _, list := range buckets {
		jobs = append(jobs, list...)
	}
	return jobs, skipped
}
