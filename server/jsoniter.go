// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"errors"
	"io"
	"reflect"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

// Make sure functions get run first
var json = func() jsoniter.API {
	neverEmpty := func(pointer unsafe.Pointer) bool { return false }

	jsoniter.RegisterTypeEncoderFunc(reflect.TypeOf(Message{}).String(), encodeMessage, neverEmpty)
	jsoniter.RegisterTypeDecoderFunc(reflect.TypeOf(Message{}).String(), decodeMessage)

	return jsoniter.Config{
		IndentionStep:                 0,
		MarshalFloatWith6Digits:       true,
		EscapeHTML:                    false,
		SortMapKeys:                   true,
		TagKey:                        "json",
		ObjectFieldMustBeSimpleString: true,
		CaseSensitive:                 true,
	}.Froze()
}()

func encodeMessage(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	message := (*Message)(ptr)
	stream.WriteVal(message.messageJSON())
}

// decodeMessage reads the {type, data} envelope without depending on field order.
func decodeMessage(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	var in interface{}
	var dataBytes []byte

	iter.ReadObjectCB(func(i *jsoniter.Iterator, field string) bool {
		switch field {
		case "type":
			typeBytes := i.ReadStringAsSlice()
			if inboundType, ok := inboundMessageTypes[messageType(typeBytes)]; ok {
				in = reflect.New(inboundType).Interface()
			} else {
				in = &InvalidInbound{messageType: messageType(typeBytes)}
			}
		case "data":
			dataBytes = i.SkipAndReturnBytes()
		default:
			i.Skip()
		}
		return true
	})

	if iter.Error != nil && iter.Error != io.EOF {
		return
	}
	if in == nil {
		iter.Error = errors.New("no inbound message type")
		return
	}

	// InvalidInbound carries no data
	if _, invalid := in.(*InvalidInbound); !invalid && dataBytes != nil {
		pool := iter.Pool()
		subIter := pool.BorrowIterator(dataBytes)
		subIter.ReadVal(in)
		if subIter.Error != nil && subIter.Error != io.EOF {
			iter.Error = subIter.Error
		}
		pool.ReturnIterator(subIter)
	}

	message := (*Message)(ptr)
	message.Data = reflect.Indirect(reflect.ValueOf(in)).Interface()
}
