package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/ledger/x/msig"
	"github.com/iov-one/ledger/x/sigs"
	"github.com/iov-one/ledger/x/wallet"
)

// Tx carries exactly one message and the signature of its sender. Only
// one of the message fields may be set.
type Tx struct {
	Signature            *sigs.StdSignature         `protobuf:"bytes,1,opt,name=signature,proto3" json:"signature,omitempty"`
	CreateWalletMsg      *wallet.CreateWalletMsg    `protobuf:"bytes,10,opt,name=create_wallet_msg,json=createWalletMsg,proto3" json:"create_wallet_msg,omitempty"`
	IssueMsg             *wallet.IssueMsg           `protobuf:"bytes,11,opt,name=issue_msg,json=issueMsg,proto3" json:"issue_msg,omitempty"`
	TransferMultisignMsg *msig.TransferMultisignMsg `protobuf:"bytes,12,opt,name=transfer_multisign_msg,json=transferMultisignMsg,proto3" json:"transfer_multisign_msg,omitempty"`
	AcceptMultisignMsg   *msig.AcceptMultisignMsg   `protobuf:"bytes,13,opt,name=accept_multisign_msg,json=acceptMultisignMsg,proto3" json:"accept_multisign_msg,omitempty"`
	TransferMsg          *wallet.TransferMsg        `protobuf:"bytes,14,opt,name=transfer_msg,json=transferMsg,proto3" json:"transfer_msg,omitempty"`
}

type txCodec Tx

func (m *txCodec) Reset()         { *m = txCodec{} }
func (m *txCodec) String() string { return proto.CompactTextString(m) }
func (*txCodec) ProtoMessage()    {}

func (m *Tx) Marshal() ([]byte, error) { return proto.Marshal((*txCodec)(m)) }
func (m *Tx) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*txCodec)(m))
}

// ResultSet contains a list of keys or values returned by a query.
type ResultSet struct {
	Results [][]byte `protobuf:"bytes,1,rep,name=results,proto3" json:"results"`
}

type resultSetCodec ResultSet

func (m *resultSetCodec) Reset()         { *m = resultSetCodec{} }
func (m *resultSetCodec) String() string { return proto.CompactTextString(m) }
func (*resultSetCodec) ProtoMessage()    {}

func (m *ResultSet) Marshal() ([]byte, error) { return proto.Marshal((*resultSetCodec)(m)) }
func (m *ResultSet) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*resultSetCodec)(m))
}
