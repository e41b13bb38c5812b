package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/zeromicro/go-zero/core/conf"

	"dex-idl-sol/internal/config"
	"dex-idl-sol/internal/logic/eventparser"
	"dex-idl-sol/internal/logic/txadapter"
	"dex-idl-sol/internal/pkg/logger"
)

var (
	configFile = flag.String("f", "etc/decodetx.yaml", "the config file")
	signature  = flag.String("sig", "", "transaction signature to fetch and decode")
	program    = flag.String("program", "", "protocol name for -data, e.g. pumpfun")
	data       = flag.String("data", "", "hex encoded instruction / event data")
	accounts   = flag.String("accounts", "", "comma separated base58 accounts for -data")
	output     = flag.String("o", outputJSON, "output format: json | yaml")
	timeout    = flag.Duration("timeout", 15*time.Second, "rpc timeout")
)

func main() {
	flag.Parse()

	var c config.DecodeTxConfig
	conf.MustLoad(*configFile, &c)
	if err := logger.Init(c.LogConf.ToLogOption()); err != nil {
		fail(err)
	}
	defer logger.Sync()

	if err := c.DecodeConf.Validate(); err != nil {
		fail(err)
	}
	parser, err := eventparser.NewDefaultParser(c.DecodeConf.Enabled)
	if err != nil {
		fail(err)
	}

	var result any
	switch {
	case *signature != "":
		result, err = decodeSignature(parser, c.RpcConf.Endpoint, *signature)
	case *program != "" && *data != "":
		result, err = decodeData(parser, *program, *data, *accounts)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fail(err)
	}

	out, err := render(result, *output)
	if err != nil {
		fail(err)
	}
	_, _ = os.Stdout.Write(out)
}

func decodeSignature(parser *eventparser.Parser, endpoint, sig string) (any, error) {
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	cli := client.NewClient(endpoint)
	tx, err := cli.GetTransaction(ctx, sig)
	if err != nil {
		return nil, fmt.Errorf("get transaction %s: %w", sig, err)
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction %s not found", sig)
	}

	adapted, err := txadapter.AdaptRpcTx(tx)
	if err != nil {
		return nil, err
	}
	records := parser.ExtractRecords(adapted)
	logger.Infof("[DecodeTx:sig] 解码完成: tx=%s, slot=%d, instructions=%d, records=%d",
		sig, tx.Slot, len(adapted.Instructions), len(records))
	return records, nil
}

func decodeData(parser *eventparser.Parser, name, dataHex, accountList string) (any, error) {
	prog, ok := parser.ProgramByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown or disabled protocol %q", name)
	}
	raw, err := hex.DecodeString(strings.TrimPrefix(dataHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("empty data")
	}
	accs, err := parseAccounts(accountList)
	if err != nil {
		return nil, err
	}
	return decodeRaw(prog, raw, accs)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "decodetx:", err)
	logger.Sync()
	os.Exit(1)
}
