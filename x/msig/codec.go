package msig

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/ledger"
)

// Types below follow the layout declared in codec.proto. Each one
// marshals through a method-less codec twin.

// PendingTransfer is a transfer waiting for approval.
type PendingTransfer struct {
	Hash      ledger.Digest     `protobuf:"bytes,1,opt,name=hash,proto3" json:"hash"`
	From      ledger.Identity   `protobuf:"bytes,2,opt,name=from,proto3" json:"from"`
	To        ledger.Identity   `protobuf:"bytes,3,opt,name=to,proto3" json:"to"`
	Approvers []ledger.Identity `protobuf:"bytes,4,rep,name=approvers,proto3" json:"approvers"`
	Amount    uint64            `protobuf:"varint,5,opt,name=amount,proto3" json:"amount"`
	Accepted  []ledger.Identity `protobuf:"bytes,6,rep,name=accepted,proto3" json:"accepted"`
	Sequence  int64             `protobuf:"varint,7,opt,name=sequence,proto3" json:"sequence"`
}

type pendingTransferCodec PendingTransfer

func (m *pendingTransferCodec) Reset()         { *m = pendingTransferCodec{} }
func (m *pendingTransferCodec) String() string { return proto.CompactTextString(m) }
func (*pendingTransferCodec) ProtoMessage()    {}

func (m *PendingTransfer) Marshal() ([]byte, error) {
	return proto.Marshal((*pendingTransferCodec)(m))
}
func (m *PendingTransfer) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*pendingTransferCodec)(m))
}

// SettledTransfer is the permanent record of a settled transfer.
type SettledTransfer struct {
	Hash     ledger.Digest   `protobuf:"bytes,1,opt,name=hash,proto3" json:"hash"`
	From     ledger.Identity `protobuf:"bytes,2,opt,name=from,proto3" json:"from"`
	To       ledger.Identity `protobuf:"bytes,3,opt,name=to,proto3" json:"to"`
	Amount   uint64          `protobuf:"varint,4,opt,name=amount,proto3" json:"amount"`
	Sequence int64           `protobuf:"varint,5,opt,name=sequence,proto3" json:"sequence"`
}

type settledTransferCodec SettledTransfer

func (m *settledTransferCodec) Reset()         { *m = settledTransferCodec{} }
func (m *settledTransferCodec) String() string { return proto.CompactTextString(m) }
func (*settledTransferCodec) ProtoMessage()    {}

func (m *SettledTransfer) Marshal() ([]byte, error) {
	return proto.Marshal((*settledTransferCodec)(m))
}
func (m *SettledTransfer) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*settledTransferCodec)(m))
}

// TransferMultisignMsg initiates a transfer that settles once all
// approvers accept it.
type TransferMultisignMsg struct {
	From      ledger.Identity   `protobuf:"bytes,1,opt,name=from,proto3" json:"from"`
	To        ledger.Identity   `protobuf:"bytes,2,opt,name=to,proto3" json:"to"`
	Approvers []ledger.Identity `protobuf:"bytes,3,rep,name=approvers,proto3" json:"approvers"`
	Amount    uint64            `protobuf:"varint,4,opt,name=amount,proto3" json:"amount"`
	Seed      uint64            `protobuf:"varint,5,opt,name=seed,proto3" json:"seed"`
}

type transferMultisignMsgCodec TransferMultisignMsg

func (m *transferMultisignMsgCodec) Reset()         { *m = transferMultisignMsgCodec{} }
func (m *transferMultisignMsgCodec) String() string { return proto.CompactTextString(m) }
func (*transferMultisignMsgCodec) ProtoMessage()    {}

func (m *TransferMultisignMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*transferMultisignMsgCodec)(m))
}
func (m *TransferMultisignMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*transferMultisignMsgCodec)(m))
}

// AcceptMultisignMsg accepts a pending transfer on behalf of the signer.
type AcceptMultisignMsg struct {
	TxHash    ledger.Digest     `protobuf:"bytes,1,opt,name=tx_hash,json=txHash,proto3" json:"tx_hash"`
	From      ledger.Identity   `protobuf:"bytes,2,opt,name=from,proto3" json:"from"`
	To        ledger.Identity   `protobuf:"bytes,3,opt,name=to,proto3" json:"to"`
	Approvers []ledger.Identity `protobuf:"bytes,4,rep,name=approvers,proto3" json:"approvers"`
	Seed      uint64            `protobuf:"varint,5,opt,name=seed,proto3" json:"seed"`
}

type acceptMultisignMsgCodec AcceptMultisignMsg

func (m *acceptMultisignMsgCodec) Reset()         { *m = acceptMultisignMsgCodec{} }
func (m *acceptMultisignMsgCodec) String() string { return proto.CompactTextString(m) }
func (*acceptMultisignMsgCodec) ProtoMessage()    {}

func (m *AcceptMultisignMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*acceptMultisignMsgCodec)(m))
}
func (m *AcceptMultisignMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*acceptMultisignMsgCodec)(m))
}
