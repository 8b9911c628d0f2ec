package wallet

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/ledger"
)

// Messages and models are encoded with protobuf, following the layout
// declared in codec.proto. Each type marshals through a method-less
// codec twin so the proto package never calls back into Marshal.

// Wallet is the persisted state of a single account.
type Wallet struct {
	PubKey         ledger.Identity `protobuf:"bytes,1,opt,name=pub_key,json=pubKey,proto3" json:"pub_key"`
	Name           string          `protobuf:"bytes,2,opt,name=name,proto3" json:"name"`
	Balance        uint64          `protobuf:"varint,3,opt,name=balance,proto3" json:"balance"`
	PendingBalance uint64          `protobuf:"varint,4,opt,name=pending_balance,json=pendingBalance,proto3" json:"pending_balance"`
	PendingTxs     []ledger.Digest `protobuf:"bytes,5,rep,name=pending_txs,json=pendingTxs,proto3" json:"pending_txs"`
	HistoryLen     uint64          `protobuf:"varint,6,opt,name=history_len,json=historyLen,proto3" json:"history_len"`
	HistoryHash    ledger.Digest   `protobuf:"bytes,7,opt,name=history_hash,json=historyHash,proto3" json:"history_hash"`
}

type walletCodec Wallet

func (m *walletCodec) Reset()         { *m = walletCodec{} }
func (m *walletCodec) String() string { return proto.CompactTextString(m) }
func (*walletCodec) ProtoMessage()    {}

func (m *Wallet) Marshal() ([]byte, error) { return proto.Marshal((*walletCodec)(m)) }
func (m *Wallet) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*walletCodec)(m))
}

// Configuration is stored in the database under the "_c:wallet" key.
type Configuration struct {
	Issuers    []ledger.Identity `protobuf:"bytes,1,rep,name=issuers,proto3" json:"issuers"`
	MaxNameLen int32             `protobuf:"varint,2,opt,name=max_name_len,json=maxNameLen,proto3" json:"max_name_len"`
}

type configurationCodec Configuration

func (m *configurationCodec) Reset()         { *m = configurationCodec{} }
func (m *configurationCodec) String() string { return proto.CompactTextString(m) }
func (*configurationCodec) ProtoMessage()    {}

func (m *Configuration) Marshal() ([]byte, error) {
	return proto.Marshal((*configurationCodec)(m))
}
func (m *Configuration) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*configurationCodec)(m))
}

// CreateWalletMsg creates a wallet owned by the signer.
type CreateWalletMsg struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name"`
}

type createWalletMsgCodec CreateWalletMsg

func (m *createWalletMsgCodec) Reset()         { *m = createWalletMsgCodec{} }
func (m *createWalletMsgCodec) String() string { return proto.CompactTextString(m) }
func (*createWalletMsgCodec) ProtoMessage()    {}

func (m *CreateWalletMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*createWalletMsgCodec)(m))
}
func (m *CreateWalletMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*createWalletMsgCodec)(m))
}

// IssueMsg adds funds to the wallet of the signer.
type IssueMsg struct {
	Amount uint64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount"`
	Seed   uint64 `protobuf:"varint,2,opt,name=seed,proto3" json:"seed"`
}

type issueMsgCodec IssueMsg

func (m *issueMsgCodec) Reset()         { *m = issueMsgCodec{} }
func (m *issueMsgCodec) String() string { return proto.CompactTextString(m) }
func (*issueMsgCodec) ProtoMessage()    {}

func (m *IssueMsg) Marshal() ([]byte, error) { return proto.Marshal((*issueMsgCodec)(m)) }
func (m *IssueMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*issueMsgCodec)(m))
}

// TransferMsg moves funds from the wallet of the signer straight to the
// receiver, without approvers.
type TransferMsg struct {
	To     ledger.Identity `protobuf:"bytes,1,opt,name=to,proto3" json:"to"`
	Amount uint64          `protobuf:"varint,2,opt,name=amount,proto3" json:"amount"`
	Seed   uint64          `protobuf:"varint,3,opt,name=seed,proto3" json:"seed"`
}

type transferMsgCodec TransferMsg

func (m *transferMsgCodec) Reset()         { *m = transferMsgCodec{} }
func (m *transferMsgCodec) String() string { return proto.CompactTextString(m) }
func (*transferMsgCodec) ProtoMessage()    {}

func (m *TransferMsg) Marshal() ([]byte, error) { return proto.Marshal((*transferMsgCodec)(m)) }
func (m *TransferMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*transferMsgCodec)(m))
}
