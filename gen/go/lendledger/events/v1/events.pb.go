// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.5
// 	protoc        (unknown)
// source: lendledger/events/v1/events.proto

package eventsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// EventType enumerates every operation the ledger core accepts.
type EventType int32

const (
	EventType_EVENT_TYPE_UNSPECIFIED EventType = 0
	EventType_COLLATERAL_DEPOSIT     EventType = 1
	EventType_COLLATERAL_WITHDRAW    EventType = 2
	EventType_COLLATERAL_STAKE       EventType = 3
	EventType_COLLATERAL_UNSTAKE     EventType = 4
	EventType_SAVINGS_DEPOSIT        EventType = 5
	EventType_SAVINGS_WITHDRAW       EventType = 6
	EventType_LOAN_BORROW            EventType = 7
	EventType_LOAN_REPAY             EventType = 8
	EventType_LOAN_EXTEND            EventType = 9
	EventType_LOAN_TRANSFER          EventType = 10
	EventType_LIQUIDATE              EventType = 11
	EventType_PARTIAL_LIQUIDATE      EventType = 12
	EventType_REWARD_CLAIM           EventType = 13
	EventType_REWARD_COMPOUND        EventType = 14
	EventType_FIXED_DEPOSIT_CREATE   EventType = 15
	EventType_FIXED_DEPOSIT_WITHDRAW EventType = 16
	EventType_PARAM_UPDATE           EventType = 17
	EventType_ACCOUNT_FLAG_UPDATE    EventType = 18
)

// Enum value maps for EventType.
var (
	EventType_name = map[int32]string{
		0:  "EVENT_TYPE_UNSPECIFIED",
		1:  "COLLATERAL_DEPOSIT",
		2:  "COLLATERAL_WITHDRAW",
		3:  "COLLATERAL_STAKE",
		4:  "COLLATERAL_UNSTAKE",
		5:  "SAVINGS_DEPOSIT",
		6:  "SAVINGS_WITHDRAW",
		7:  "LOAN_BORROW",
		8:  "LOAN_REPAY",
		9:  "LOAN_EXTEND",
		10: "LOAN_TRANSFER",
		11: "LIQUIDATE",
		12: "PARTIAL_LIQUIDATE",
		13: "REWARD_CLAIM",
		14: "REWARD_COMPOUND",
		15: "FIXED_DEPOSIT_CREATE",
		16: "FIXED_DEPOSIT_WITHDRAW",
		17: "PARAM_UPDATE",
		18: "ACCOUNT_FLAG_UPDATE",
	}
	EventType_value = map[string]int32{
		"EVENT_TYPE_UNSPECIFIED": 0,
		"COLLATERAL_DEPOSIT":     1,
		"COLLATERAL_WITHDRAW":    2,
		"COLLATERAL_STAKE":       3,
		"COLLATERAL_UNSTAKE":     4,
		"SAVINGS_DEPOSIT":        5,
		"SAVINGS_WITHDRAW":       6,
		"LOAN_BORROW":            7,
		"LOAN_REPAY":             8,
		"LOAN_EXTEND":            9,
		"LOAN_TRANSFER":          10,
		"LIQUIDATE":              11,
		"PARTIAL_LIQUIDATE":      12,
		"REWARD_CLAIM":           13,
		"REWARD_COMPOUND":        14,
		"FIXED_DEPOSIT_CREATE":   15,
		"FIXED_DEPOSIT_WITHDRAW": 16,
		"PARAM_UPDATE":           17,
		"ACCOUNT_FLAG_UPDATE":    18,
	}
)

func (x EventType) Enum() *EventType {
	p := new(EventType)
	*p = x
	return p
}

func (x EventType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (EventType) Descriptor() protoreflect.EnumDescriptor {
	return file_lendledger_events_v1_events_proto_enumTypes[0].Descriptor()
}

func (EventType) Type() protoreflect.EnumType {
	return &file_lendledger_events_v1_events_proto_enumTypes[0]
}

func (x EventType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use EventType.Descriptor instead.
func (EventType) EnumDescriptor() ([]byte, []int) {
	return file_lendledger_events_v1_events_proto_rawDescGZIP(), []int{0}
}

// EventEnvelope carries a raw JSON payload plus routing metadata. The
// payload schema per event type matches the NATS wire format.
type EventEnvelope struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	EventType      EventType              `protobuf:"varint,1,opt,name=event_type,json=eventType,proto3,enum=lendledger.events.v1.EventType" json:"event_type,omitempty"`
	IdempotencyKey string                 `protobuf:"bytes,2,opt,name=idempotency_key,json=idempotencyKey,proto3" json:"idempotency_key,omitempty"`
	Partition      string                 `protobuf:"bytes,3,opt,name=partition,proto3" json:"partition,omitempty"`
	SourceSequence int64                  `protobuf:"varint,4,opt,name=source_sequence,json=sourceSequence,proto3" json:"source_sequence,omitempty"`
	Timestamp      int64                  `protobuf:"varint,5,opt,name=timestamp,proto3" json:"timestamp,omitempty"` // unix seconds
	Payload        []byte                 `protobuf:"bytes,6,opt,name=payload,proto3" json:"payload,omitempty"`      // JSON, same schema as the NATS subjects
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *EventEnvelope) Reset() {
	*x = EventEnvelope{}
	mi := &file_lendledger_events_v1_events_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EventEnvelope) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EventEnvelope) ProtoMessage() {}

func (x *EventEnvelope) ProtoReflect() protoreflect.Message {
	mi := &file_lendledger_events_v1_events_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EventEnvelope.ProtoReflect.Descriptor instead.
func (*EventEnvelope) Descriptor() ([]byte, []int) {
	return file_lendledger_events_v1_events_proto_rawDescGZIP(), []int{0}
}

func (x *EventEnvelope) GetEventType() EventType {
	if x != nil {
		return x.EventType
	}
	return EventType_EVENT_TYPE_UNSPECIFIED
}

func (x *EventEnvelope) GetIdempotencyKey() string {
	if x != nil {
		return x.IdempotencyKey
	}
	return ""
}

func (x *EventEnvelope) GetPartition() string {
	if x != nil {
		return x.Partition
	}
	return ""
}

func (x *EventEnvelope) GetSourceSequence() int64 {
	if x != nil {
		return x.SourceSequence
	}
	return 0
}

func (x *EventEnvelope) GetTimestamp() int64 {
	if x != nil {
		return x.Timestamp
	}
	return 0
}

func (x *EventEnvelope) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

var File_lendledger_events_v1_events_proto protoreflect.FileDescriptor

var file_lendledger_events_v1_events_proto_rawDesc = string([]byte{
	0x0a, 0x21, 0x6c, 0x65, 0x6e, 0x64, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2f, 0x65, 0x76, 0x65,
	0x6e, 0x74, 0x73, 0x2f, 0x76, 0x31, 0x2f, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x12, 0x14, 0x6c, 0x65, 0x6e, 0x64, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e,
	0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31, 0x22, 0xf7, 0x01, 0x0a, 0x0d, 0x45, 0x76,
	0x65, 0x6e, 0x74, 0x45, 0x6e, 0x76, 0x65, 0x6c, 0x6f, 0x70, 0x65, 0x12, 0x3e, 0x0a, 0x0a, 0x65,
	0x76, 0x65, 0x6e, 0x74, 0x5f, 0x74, 0x79, 0x70, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0e, 0x32,
	0x1f, 0x2e, 0x6c, 0x65, 0x6e, 0x64, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2e, 0x65, 0x76, 0x65,
	0x6e, 0x74, 0x73, 0x2e, 0x76, 0x31, 0x2e, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x54, 0x79, 0x70, 0x65,
	0x52, 0x09, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x54, 0x79, 0x70, 0x65, 0x12, 0x27, 0x0a, 0x0f, 0x69,
	0x64, 0x65, 0x6d, 0x70, 0x6f, 0x74, 0x65, 0x6e, 0x63, 0x79, 0x5f, 0x6b, 0x65, 0x79, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x0e, 0x69, 0x64, 0x65, 0x6d, 0x70, 0x6f, 0x74, 0x65, 0x6e, 0x63,
	0x79, 0x4b, 0x65, 0x79, 0x12, 0x1c, 0x0a, 0x09, 0x70, 0x61, 0x72, 0x74, 0x69, 0x74, 0x69, 0x6f,
	0x6e, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x70, 0x61, 0x72, 0x74, 0x69, 0x74, 0x69,
	0x6f, 0x6e, 0x12, 0x27, 0x0a, 0x0f, 0x73, 0x6f, 0x75, 0x72, 0x63, 0x65, 0x5f, 0x73, 0x65, 0x71,
	0x75, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0e, 0x73, 0x6f, 0x75,
	0x72, 0x63, 0x65, 0x53, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x12, 0x1c, 0x0a, 0x09, 0x74,
	0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x18, 0x05, 0x20, 0x01, 0x28, 0x03, 0x52, 0x09,
	0x74, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x12, 0x18, 0x0a, 0x07, 0x70, 0x61, 0x79,
	0x6c, 0x6f, 0x61, 0x64, 0x18, 0x06, 0x20, 0x01, 0x28, 0x0c, 0x52, 0x07, 0x70, 0x61, 0x79, 0x6c,
	0x6f, 0x61, 0x64, 0x2a, 0xa4, 0x03, 0x0a, 0x09, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x54, 0x79, 0x70,
	0x65, 0x12, 0x1a, 0x0a, 0x16, 0x45, 0x56, 0x45, 0x4e, 0x54, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f,
	0x55, 0x4e, 0x53, 0x50, 0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44, 0x10, 0x00, 0x12, 0x16, 0x0a,
	0x12, 0x43, 0x4f, 0x4c, 0x4c, 0x41, 0x54, 0x45, 0x52, 0x41, 0x4c, 0x5f, 0x44, 0x45, 0x50, 0x4f,
	0x53, 0x49, 0x54, 0x10, 0x01, 0x12, 0x17, 0x0a, 0x13, 0x43, 0x4f, 0x4c, 0x4c, 0x41, 0x54, 0x45,
	0x52, 0x41, 0x4c, 0x5f, 0x57, 0x49, 0x54, 0x48, 0x44, 0x52, 0x41, 0x57, 0x10, 0x02, 0x12, 0x14,
	0x0a, 0x10, 0x43, 0x4f, 0x4c, 0x4c, 0x41, 0x54, 0x45, 0x52, 0x41, 0x4c, 0x5f, 0x53, 0x54, 0x41,
	0x4b, 0x45, 0x10, 0x03, 0x12, 0x16, 0x0a, 0x12, 0x43, 0x4f, 0x4c, 0x4c, 0x41, 0x54, 0x45, 0x52,
	0x41, 0x4c, 0x5f, 0x55, 0x4e, 0x53, 0x54, 0x41, 0x4b, 0x45, 0x10, 0x04, 0x12, 0x13, 0x0a, 0x0f,
	0x53, 0x41, 0x56, 0x49, 0x4e, 0x47, 0x53, 0x5f, 0x44, 0x45, 0x50, 0x4f, 0x53, 0x49, 0x54, 0x10,
	0x05, 0x12, 0x14, 0x0a, 0x10, 0x53, 0x41, 0x56, 0x49, 0x4e, 0x47, 0x53, 0x5f, 0x57, 0x49, 0x54,
	0x48, 0x44, 0x52, 0x41, 0x57, 0x10, 0x06, 0x12, 0x0f, 0x0a, 0x0b, 0x4c, 0x4f, 0x41, 0x4e, 0x5f,
	0x42, 0x4f, 0x52, 0x52, 0x4f, 0x57, 0x10, 0x07, 0x12, 0x0e, 0x0a, 0x0a, 0x4c, 0x4f, 0x41, 0x4e,
	0x5f, 0x52, 0x45, 0x50, 0x41, 0x59, 0x10, 0x08, 0x12, 0x0f, 0x0a, 0x0b, 0x4c, 0x4f, 0x41, 0x4e,
	0x5f, 0x45, 0x58, 0x54, 0x45, 0x4e, 0x44, 0x10, 0x09, 0x12, 0x11, 0x0a, 0x0d, 0x4c, 0x4f, 0x41,
	0x4e, 0x5f, 0x54, 0x52, 0x41, 0x4e, 0x53, 0x46, 0x45, 0x52, 0x10, 0x0a, 0x12, 0x0d, 0x0a, 0x09,
	0x4c, 0x49, 0x51, 0x55, 0x49, 0x44, 0x41, 0x54, 0x45, 0x10, 0x0b, 0x12, 0x15, 0x0a, 0x11, 0x50,
	0x41, 0x52, 0x54, 0x49, 0x41, 0x4c, 0x5f, 0x4c, 0x49, 0x51, 0x55, 0x49, 0x44, 0x41, 0x54, 0x45,
	0x10, 0x0c, 0x12, 0x10, 0x0a, 0x0c, 0x52, 0x45, 0x57, 0x41, 0x52, 0x44, 0x5f, 0x43, 0x4c, 0x41,
	0x49, 0x4d, 0x10, 0x0d, 0x12, 0x13, 0x0a, 0x0f, 0x52, 0x45, 0x57, 0x41, 0x52, 0x44, 0x5f, 0x43,
	0x4f, 0x4d, 0x50, 0x4f, 0x55, 0x4e, 0x44, 0x10, 0x0e, 0x12, 0x18, 0x0a, 0x14, 0x46, 0x49, 0x58,
	0x45, 0x44, 0x5f, 0x44, 0x45, 0x50, 0x4f, 0x53, 0x49, 0x54, 0x5f, 0x43, 0x52, 0x45, 0x41, 0x54,
	0x45, 0x10, 0x0f, 0x12, 0x1a, 0x0a, 0x16, 0x46, 0x49, 0x58, 0x45, 0x44, 0x5f, 0x44, 0x45, 0x50,
	0x4f, 0x53, 0x49, 0x54, 0x5f, 0x57, 0x49, 0x54, 0x48, 0x44, 0x52, 0x41, 0x57, 0x10, 0x10, 0x12,
	0x10, 0x0a, 0x0c, 0x50, 0x41, 0x52, 0x41, 0x4d, 0x5f, 0x55, 0x50, 0x44, 0x41, 0x54, 0x45, 0x10,
	0x11, 0x12, 0x17, 0x0a, 0x13, 0x41, 0x43, 0x43, 0x4f, 0x55, 0x4e, 0x54, 0x5f, 0x46, 0x4c, 0x41,
	0x47, 0x5f, 0x55, 0x50, 0x44, 0x41, 0x54, 0x45, 0x10, 0x12, 0x42, 0x31, 0x5a, 0x2f, 0x4c, 0x65,
	0x6e, 0x64, 0x4c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x67, 0x6f, 0x2f,
	0x6c, 0x65, 0x6e, 0x64, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x2f, 0x65, 0x76, 0x65, 0x6e, 0x74,
	0x73, 0x2f, 0x76, 0x31, 0x3b, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x76, 0x31, 0x62, 0x06, 0x70,
	0x72, 0x6f, 0x74, 0x6f, 0x33,
})

var (
	file_lendledger_events_v1_events_proto_rawDescOnce sync.Once
	file_lendledger_events_v1_events_proto_rawDescData []byte
)

func file_lendledger_events_v1_events_proto_rawDescGZIP() []byte {
	file_lendledger_events_v1_events_proto_rawDescOnce.Do(func() {
		file_lendledger_events_v1_events_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_lendledger_events_v1_events_proto_rawDesc), len(file_lendledger_events_v1_events_proto_rawDesc)))
	})
	return file_lendledger_events_v1_events_proto_rawDescData
}

var file_lendledger_events_v1_events_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_lendledger_events_v1_events_proto_msgTypes = make([]protoimpl.MessageInfo, 1)
var file_lendledger_events_v1_events_proto_goTypes = []any{
	(EventType)(0),        // 0: lendledger.events.v1.EventType
	(*EventEnvelope)(nil), // 1: lendledger.events.v1.EventEnvelope
}
var file_lendledger_events_v1_events_proto_depIdxs = []int32{
	0, // 0: lendledger.events.v1.EventEnvelope.event_type:type_name -> lendledger.events.v1.EventType
	1, // [1:1] is the sub-list for method output_type
	1, // [1:1] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_lendledger_events_v1_events_proto_init() }
func file_lendledger_events_v1_events_proto_init() {
	if File_lendledger_events_v1_events_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_lendledger_events_v1_events_proto_rawDesc), len(file_lendledger_events_v1_events_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   1,
			NumExtensions: 0,
			NumServices:   0,
		},
		GoTypes:           file_lendledger_events_v1_events_proto_goTypes,
		DependencyIndexes: file_lendledger_events_v1_events_proto_depIdxs,
		EnumInfos:         file_lendledger_events_v1_events_proto_enumTypes,
		MessageInfos:      file_lendledger_events_v1_events_proto_msgTypes,
	}.Build()
	File_lendledger_events_v1_events_proto = out.File
	file_lendledger_events_v1_events_proto_goTypes = nil
	file_lendledger_events_v1_events_proto_depIdxs = nil
}
