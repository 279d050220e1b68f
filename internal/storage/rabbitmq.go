package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"resume-nlp-go/internal/config"
)

// MessageQueue 消息队列接口
type MessageQueue interface {
	// PublishMessage 发布消息
	PublishMessage(ctx context.Context, exchangeName, routingKey string, message []byte, persistent bool) error

	// PublishJSON 发布JSON格式消息
	PublishJSON(ctx context.Context, exchangeName, routingKey string, data interface{}, persistent bool) error

	// EnsureExchange 确保交换机存在
	EnsureExchange(exchangeName, exchangeType string, durable bool) error

	// EnsureQueue 确保队列存在
	EnsureQueue(queueName string, durable bool) error

	// BindQueue 绑定队列到交换机
	BindQueue(queueName, exchangeName, routingKey string) error

	// Close 关闭连接
	Close() error
}

// 确保RabbitMQ实现了MessageQueue接口
var _ MessageQueue = (*RabbitMQ)(nil)

// RabbitMQ 提供消息队列功能
type RabbitMQ struct {
	conn        *amqp.Connection
	channelPool sync.Pool
	declareMu   sync.Mutex      // 保护声明缓存
	exchangeMap map[string]bool // 记录已声明的exchange
	queueMap    map[string]bool // 记录已声明的queue
	bindingMap  map[string]bool // 记录已创建的binding (key格式: "exchange:queue:routingKey")
	cfg         *config.RabbitMQConfig
}

// NewRabbitMQ 创建RabbitMQ客户端
func NewRabbitMQ(cfg *config.RabbitMQConfig) (*RabbitMQ, error) {
	if cfg == nil {
		return nil, fmt.Errorf("RabbitMQ配置不能为空")
	}
	if cfg.URL == "" {
		return nil, fmt.Errorf("RabbitMQ URL配置不能为空")
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("无法连接到RabbitMQ服务器 (%s): %w", cfg.URL, err)
	}

	mq := &RabbitMQ{
		conn:        conn,
		exchangeMap: make(map[string]bool),
		queueMap:    make(map[string]bool),
		bindingMap:  make(map[string]bool),
		cfg:         cfg,
	}

	mq.channelPool = sync.Pool{
		New: func() interface{} {
			ch, errPool := conn.Channel()
			if errPool != nil {
				log.Printf("创建RabbitMQ通道失败: %v", errPool)
				return nil
			}
			return ch
		},
	}

	// 测试连接和通道
	testCh := mq.getChannel()
	if testCh == nil {
		conn.Close()
		return nil, fmt.Errorf("无法创建RabbitMQ通道")
	}
	mq.putChannel(testCh)

	return mq, nil
}

// getChannel 获取可用通道
func (r *RabbitMQ) getChannel() *amqp.Channel {
	ch := r.channelPool.Get()
	if ch == nil {
		newCh, err := r.conn.Channel()
		if err != nil {
			log.Printf("创建新RabbitMQ通道失败: %v", err)
			return nil
		}
		return newCh
	}
	return ch.(*amqp.Channel)
}

// putChannel 归还通道到池
func (r *RabbitMQ) putChannel(ch *amqp.Channel) {
	if ch != nil {
		r.channelPool.Put(ch)
	}
}

// Close 关闭连接
func (r *RabbitMQ) Close() error {
	return r.conn.Close()
}

// EnsureExchange 确保exchange存在
func (r *RabbitMQ) EnsureExchange(exchangeName, exchangeType string, durable bool) error {
	if exchangeName == "" {
		return fmt.Errorf("exchange名称不能为空")
	}

	r.declareMu.Lock()
	defer r.declareMu.Unlock()
	if r.exchangeMap[exchangeName] {
		return nil
	}

	ch := r.getChannel()
	if ch == nil {
		return fmt.Errorf("无法获取RabbitMQ通道")
	}
	defer r.putChannel(ch)

	err := ch.ExchangeDeclare(
		exchangeName, // exchange名称
		exchangeType, // exchange类型
		durable,      // 持久化
		false,        // 自动删除
		false,        // 内部专用
		false,        // 非阻塞
		nil,          // 参数
	)
	if err != nil {
		return fmt.Errorf("声明exchange失败: %w", err)
	}

	r.exchangeMap[exchangeName] = true
	return nil
}

// EnsureQueue 确保队列存在
func (r *RabbitMQ) EnsureQueue(queueName string, durable bool) error {
	if queueName == "" {
		return fmt.Errorf("队列名称不能为空")
	}

	r.declareMu.Lock()
	defer r.declareMu.Unlock()
	if r.queueMap[queueName] {
		return nil
	}

	ch := r.getChannel()
	if ch == nil {
		return fmt.Errorf("无法获取RabbitMQ通道")
	}
	defer r.putChannel(ch)

	_, err := ch.QueueDeclare(
		queueName, // 队列名称
		durable,   // 持久化
		false,     // 自动删除
		false,     // 排他
		false,     // 非阻塞
		nil,       // 参数
	)
	if err != nil {
		return fmt.Errorf("声明队列失败: %w", err)
	}

	r.queueMap[queueName] = true
	return nil
}

// BindQueue 绑定队列到交换机
func (r *RabbitMQ) BindQueue(queueName, exchangeName, routingKey string) error {
	bindingKey := fmt.Sprintf("%s:%s:%s", exchangeName, queueName, routingKey)

	r.declareMu.Lock()
	defer r.declareMu.Unlock()
	if r.bindingMap[bindingKey] {
		return nil
	}

	ch := r.getChannel()
	if ch == nil {
		return fmt.Errorf("无法获取RabbitMQ通道")
	}
	defer r.putChannel(ch)

	if err := ch.QueueBind(queueName, routingKey, exchangeName, false, nil); err != nil {
		return fmt.Errorf("绑定队列失败: %w", err)
	}

	r.bindingMap[bindingKey] = true
	return nil
}

// PublishMessage 发布消息
func (r *RabbitMQ) PublishMessage(ctx context.Context, exchangeName, routingKey string, message []byte, persistent bool) error {
	ch := r.getChannel()
	if ch == nil {
		return fmt.Errorf("无法获取RabbitMQ通道")
	}
	defer r.putChannel(ch)

	deliveryMode := amqp.Transient
	if persistent {
		deliveryMode = amqp.Persistent
	}

	err := ch.PublishWithContext(ctx,
		exchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         message,
			DeliveryMode: deliveryMode,
		},
	)
	if err != nil {
		return fmt.Errorf("发布消息到 %s/%s 失败: %w", exchangeName, routingKey, err)
	}
	return nil
}

// PublishJSON 发布JSON格式消息
func (r *RabbitMQ) PublishJSON(ctx context.Context, exchangeName, routingKey string, data interface{}, persistent bool) error {
	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("序列化消息失败: %w", err)
	}
	return r.PublishMessage(ctx, exchangeName, routingKey, body, persistent)
}

// StartConsumer 启动消费者。handler返回true时确认消息，返回false时拒绝并重新入队。
// 返回的channel可用于停止消费者。
func (r *RabbitMQ) StartConsumer(queueName string, prefetchCount int, handler func([]byte) bool) (chan<- struct{}, error) {
	stopCh := make(chan struct{})

	ch := r.getChannel()
	if ch == nil {
		return nil, fmt.Errorf("无法获取RabbitMQ通道")
	}

	// 设置QoS，控制预取数量
	if err := ch.Qos(prefetchCount, 0, false); err != nil {
		r.putChannel(ch)
		return nil, fmt.Errorf("设置QoS失败: %w", err)
	}

	deliveries, err := ch.Consume(
		queueName, // 队列
		"",        // 消费者标签，留空由server生成唯一标签
		false,     // 自动确认
		false,     // 独占
		false,     // 非本地
		false,     // 非阻塞
		nil,       // 参数
	)
	if err != nil {
		r.putChannel(ch)
		return nil, fmt.Errorf("注册消费者失败: %w", err)
	}

	go func() {
		defer r.putChannel(ch)
		defer log.Printf("RabbitMQ消费者已停止: %s", queueName)

		log.Printf("RabbitMQ消费者已启动，队列: %s, 预取数量: %d", queueName, prefetchCount)

		for {
			select {
			case <-stopCh:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					log.Println("RabbitMQ通道已关闭")
					return
				}

				if handler(delivery.Body) {
					if err := delivery.Ack(false); err != nil {
						log.Printf("确认消息失败: %v", err)
					}
				} else {
					// 处理失败，拒绝并重新入队
					if err := delivery.Nack(false, true); err != nil {
						log.Printf("拒绝消息失败: %v", err)
					}
				}
			}
		}
	}()

	return stopCh, nil
}
