package mq

import (
	"time"

	"smart_checkout/checkout/fbs/CheckoutMessages"

	flatbuffers "github.com/google/flatbuffers/go"
	zmq "github.com/pebbe/zmq4"
)

type MetricsPublisher struct {
	socket *zmq.Socket
}

// NewMetricsPublisher creates a ZMQ PUB socket for broadcasting discount
// evaluation metrics to the analytics side.
func NewMetricsPublisher(bindAddr string) (*MetricsPublisher, error) {
	sock, err := zmq.NewSocket(zmq.Type(zmq.PUB))
	if err != nil {
		return nil, err
	}
	if err := sock.Bind(bindAddr); err != nil {
		return nil, err
	}
	return &MetricsPublisher{socket: sock}, nil
}

// Publish serializes and emits one evaluation outcome. Evaluation results
// never depend on whether the publish succeeded.
func (p *MetricsPublisher) Publish(evaluationID, product string, finalDiscount float64, rules []string, duration float64) error {
	payload := encodeMetric(evaluationID, product, finalDiscount, rules, duration, time.Now().Unix())
	_, err := p.socket.SendBytes(payload, 0)
	return err
}

// Close releases underlying publisher socket resources.
func (p *MetricsPublisher) Close() {
	p.socket.Close()
}

func encodeMetric(evaluationID, product string, finalDiscount float64, rules []string, duration float64, ts int64) []byte {
	builder := flatbuffers.NewBuilder(1024)

	eID := builder.CreateString(evaluationID)
	prod := builder.CreateString(product)

	ruleOffsets := make([]flatbuffers.UOffsetT, len(rules))
	for i, name := range rules {
		ruleOffsets[i] = builder.CreateString(name)
	}
	CheckoutMessages.EvaluationMetricStartRulesVector(builder, len(ruleOffsets))
	for i := len(ruleOffsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(ruleOffsets[i])
	}
	rulesVec := builder.EndVector(len(ruleOffsets))

	CheckoutMessages.EvaluationMetricStart(builder)
	CheckoutMessages.EvaluationMetricAddEvaluationId(builder, eID)
	CheckoutMessages.EvaluationMetricAddProduct(builder, prod)
	CheckoutMessages.EvaluationMetricAddFinalDiscount(builder, finalDiscount)
	CheckoutMessages.EvaluationMetricAddRules(builder, rulesVec)
	CheckoutMessages.EvaluationMetricAddDurationSeconds(builder, duration)
	CheckoutMessages.EvaluationMetricAddTimestamp(builder, ts)
	metric := CheckoutMessages.EvaluationMetricEnd(builder)

	builder.Finish(metric)
	return builder.FinishedBytes()
}
