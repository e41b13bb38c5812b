package pythreceiver

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"

	"github.com/near/borsh-go"

	"dex-idl-sol/internal/pkg/types"
)

// 参考: https://github.com/pyth-network/pyth-crosschain/blob/main/target_chains/solana/sdk/js/pyth_solana_receiver/src/PythSolanaReceiver.ts - buildPostPriceUpdateInstructions

type MerklePriceUpdate struct {
	Message []byte     `json:"message"`
	Proof   [][20]byte `json:"-"`
}

type PostUpdateParams struct {
	MerklePriceUpdate MerklePriceUpdate `json:"merkle_price_update"`
	TreasuryId        uint8             `json:"treasury_id"`
}

type PostUpdateAtomicParams struct {
	Vaa               []byte            `json:"-"`
	MerklePriceUpdate MerklePriceUpdate `json:"merkle_price_update"`
	TreasuryId        uint8             `json:"treasury_id"`
}

// PostUpdate 是 post_update / post_update_atomic 的解码结果；
// Feed 为 nil 表示消息不是价格消息（例如 TWAP）
type PostUpdate struct {
	TreasuryId uint8             `json:"treasury_id"`
	ProofLen   int               `json:"proof_len"`
	Feed       *PriceFeedMessage `json:"feed,omitempty"`
}

type ReclaimRentArgs struct{}

// PriceFeedMessage 原始整数字段，实际价格 = Price * 10^Exponent
type PriceFeedMessage struct {
	FeedID          string `json:"feed_id"` // hex
	Price           int64  `json:"price"`
	Confidence      uint64 `json:"confidence"`
	Exponent        int32  `json:"exponent"`
	PublishTime     int64  `json:"publish_time"`
	PrevPublishTime int64  `json:"prev_publish_time"`
	EmaPrice        int64  `json:"ema_price"`
	EmaConfidence   uint64 `json:"ema_confidence"`
}

func (m *PriceFeedMessage) PriceFloat() float64 {
	return float64(m.Price) * math.Pow10(int(m.Exponent))
}

func (m *PriceFeedMessage) ConfidenceFloat() float64 {
	return float64(m.Confidence) * math.Pow10(int(m.Exponent))
}

const (
	PriceFeedVariant    = 0
	PriceFeedMessageLen = 85
)

// borshDecode 用 borsh-go 反序列化；borsh-go 在部分畸形输入上会 panic，这里转成错误
func borshDecode[T any](payload []byte) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pyth receiver: borsh panic: %v", r)
		}
	}()
	if err = borsh.Deserialize(&v, payload); err != nil {
		return v, fmt.Errorf("pyth receiver: %w", err)
	}
	return v, nil
}

func decodePostUpdate(payload []byte) (any, error) {
	params, err := borshDecode[PostUpdateParams](payload)
	if err != nil {
		return nil, err
	}
	return buildPostUpdate(params.MerklePriceUpdate, params.TreasuryId)
}

func decodePostUpdateAtomic(payload []byte) (any, error) {
	params, err := borshDecode[PostUpdateAtomicParams](payload)
	if err != nil {
		return nil, err
	}
	return buildPostUpdate(params.MerklePriceUpdate, params.TreasuryId)
}

func buildPostUpdate(update MerklePriceUpdate, treasuryId uint8) (PostUpdate, error) {
	feed, err := ParsePriceFeedMessage(update.Message)
	if err != nil {
		return PostUpdate{}, err
	}
	return PostUpdate{
		TreasuryId: treasuryId,
		ProofLen:   len(update.Proof),
		Feed:       feed,
	}, nil
}

// ParsePriceFeedMessage 解析 Merkle 更新中的消息体（大端序）。
// 非价格消息返回 (nil, nil)；价格消息长度不符返回错误。
//
// 参考: https://github.com/pyth-network/pyth-crosschain/blob/main/price_service/sdk/js/src/AccumulatorUpdateData.ts - parsePriceFeedMessage
func ParsePriceFeedMessage(msg []byte) (*PriceFeedMessage, error) {
	if len(msg) == 0 {
		return nil, fmt.Errorf("pyth receiver: empty message")
	}
	if msg[0] != PriceFeedVariant {
		return nil, nil
	}
	if len(msg) != PriceFeedMessageLen {
		return nil, fmt.Errorf("pyth receiver: price feed message length %d, want %d", len(msg), PriceFeedMessageLen)
	}

	offset := 1
	feedID := msg[offset : offset+32]
	offset += 32
	next := func(n int) []byte {
		b := msg[offset : offset+n]
		offset += n
		return b
	}
	return &PriceFeedMessage{
		FeedID:          hex.EncodeToString(feedID),
		Price:           int64(binary.BigEndian.Uint64(next(8))),
		Confidence:      binary.BigEndian.Uint64(next(8)),
		Exponent:        int32(binary.BigEndian.Uint32(next(4))),
		PublishTime:     int64(binary.BigEndian.Uint64(next(8))),
		PrevPublishTime: int64(binary.BigEndian.Uint64(next(8))),
		EmaPrice:        int64(binary.BigEndian.Uint64(next(8))),
		EmaConfidence:   binary.BigEndian.Uint64(next(8)),
	}, nil
}

type PostUpdateAccounts struct {
	Payer              types.Pubkey `account:"0,payer"`
	EncodedVaa         types.Pubkey `account:"1,encoded_vaa"`
	Config             types.Pubkey `account:"2,config"`
	Treasury           types.Pubkey `account:"3,treasury"`
	PriceUpdateAccount types.Pubkey `account:"4,price_update_account"`
	SystemProgram      types.Pubkey `account:"5,system_program"`
	WriteAuthority     types.Pubkey `account:"6,write_authority"`
}

type PostUpdateAtomicAccounts struct {
	Payer              types.Pubkey `account:"0,payer"`
	GuardianSet        types.Pubkey `account:"1,guardian_set"`
	Config             types.Pubkey `account:"2,config"`
	Treasury           types.Pubkey `account:"3,treasury"`
	PriceUpdateAccount types.Pubkey `account:"4,price_update_account"`
	SystemProgram      types.Pubkey `account:"5,system_program"`
	WriteAuthority     types.Pubkey `account:"6,write_authority"`
}

type ReclaimRentAccounts struct {
	Payer              types.Pubkey `account:"0,payer"`
	PriceUpdateAccount types.Pubkey `account:"1,price_update_account"`
}
