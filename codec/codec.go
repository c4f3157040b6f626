package codec

import (
	"io"

	csvcodec "github.com/go-data-exporter/tabular/codec/csv"
	htmlcodec "github.com/go-data-exporter/tabular/codec/html"
	jsoncodec "github.com/go-data-exporter/tabular/codec/json"
	prettycodec "github.com/go-data-exporter/tabular/codec/pretty"
	textcodec "github.com/go-data-exporter/tabular/codec/text"
	xmlcodec "github.com/go-data-exporter/tabular/codec/xml"
	"github.com/go-data-exporter/tabular/resultset"
)

// Codec writes a whole result set to writer. Write moves the result set's
// cursor.
type Codec interface {
	Write(rs resultset.ResultSet, writer io.Writer) error
}

func Text(opts ...textcodec.Option) Codec {
	return textcodec.New(opts...)
}

func Pretty(opts ...prettycodec.Option) Codec {
	return prettycodec.New(opts...)
}

func JSON(opts ...jsoncodec.Option) Codec {
	return jsoncodec.New(opts...)
}

func CSV(opts ...csvcodec.Option) Codec {
	return csvcodec.New(opts...)
}

func HTML(opts ...htmlcodec.Option) Codec {
	return htmlcodec.New(opts...)
}

func XML(opts ...xmlcodec.Option) Codec {
	return xmlcodec.New(opts...)
}
