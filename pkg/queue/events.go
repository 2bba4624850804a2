package queue

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
)

// Publisher 抽象消息发布端，由 mq.Client 实现.
// 业务层依赖该接口，便于测试时注入内存实现.
type Publisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// -------------------------- 基于业务封装 events --------------------------

// PublishAssetUploaded 发布 av.asset.uploaded 事件。
// 资产记录与对象均已写入后调用，通知下游流程（统计、审计等）。
func PublishAssetUploaded(ctx context.Context, pub Publisher, payload AssetUploadedPayload, opts ...func(*EventHeader)) error {
	return publish(ctx, pub, TopicAssetUploaded, payload, opts...)
}

// PublishAssetStatusChanged 发布 av.asset.status.changed 事件。
func PublishAssetStatusChanged(ctx context.Context, pub Publisher, payload AssetStatusChangedPayload, opts ...func(*EventHeader)) error {
	return publish(ctx, pub, TopicAssetStatusChanged, payload, opts...)
}

// PublishAssetUpdated 发布 av.asset.updated 事件。
func PublishAssetUpdated(ctx context.Context, pub Publisher, payload AssetUpdatedPayload, opts ...func(*EventHeader)) error {
	return publish(ctx, pub, TopicAssetUpdated, payload, opts...)
}

// PublishAssetDeleted 发布 av.asset.deleted 事件。
func PublishAssetDeleted(ctx context.Context, pub Publisher, payload AssetDeletedPayload, opts ...func(*EventHeader)) error {
	return publish(ctx, pub, TopicAssetDeleted, payload, opts...)
}

// PublishAdminGranted 发布 av.admin.granted 事件。
func PublishAdminGranted(ctx context.Context, pub Publisher, payload AdminGrantedPayload, opts ...func(*EventHeader)) error {
	return publish(ctx, pub, TopicAdminGranted, payload, opts...)
}

// PublishAdminRevoked 发布 av.admin.revoked 事件。
func PublishAdminRevoked(ctx context.Context, pub Publisher, payload AdminRevokedPayload, opts ...func(*EventHeader)) error {
	return publish(ctx, pub, TopicAdminRevoked, payload, opts...)
}

func publish[T any](ctx context.Context, pub Publisher, topic string, payload T, opts ...func(*EventHeader)) error {
	if pub == nil {
		return nil
	}

	msg, err := NewWatermillMessage(topic, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(ctx, topic, msg)
}

// ParseAssetUploaded 将 Watermill 消息解析为强类型 Envelope（AssetUploadedPayload）。
func ParseAssetUploaded(msg *message.Message) (Message[AssetUploadedPayload], error) {
	return ParseWatermillMessage[AssetUploadedPayload](msg)
}

// ParseAssetStatusChanged 将 Watermill 消息解析为强类型 Envelope（AssetStatusChangedPayload）。
func ParseAssetStatusChanged(msg *message.Message) (Message[AssetStatusChangedPayload], error) {
	return ParseWatermillMessage[AssetStatusChangedPayload](msg)
}
