package sigs

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/ledger"
)

// StdSignature authenticates the signer of a transaction.
type StdSignature struct {
	Pubkey    ledger.Identity `protobuf:"bytes,1,opt,name=pubkey,proto3" json:"pubkey"`
	Signature []byte          `protobuf:"bytes,2,opt,name=signature,proto3" json:"signature"`
}

type stdSignatureCodec StdSignature

func (m *stdSignatureCodec) Reset()         { *m = stdSignatureCodec{} }
func (m *stdSignatureCodec) String() string { return proto.CompactTextString(m) }
func (*stdSignatureCodec) ProtoMessage()    {}

func (m *StdSignature) Marshal() ([]byte, error) {
	return proto.Marshal((*stdSignatureCodec)(m))
}
func (m *StdSignature) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*stdSignatureCodec)(m))
}
