package resource_test

import (
	"fmt"

	"github.com/jdziat/docdb-go/pkg/resource"
)

func ExampleParseURL() {
	parts, err := resource.ParseURL("https://myaccount.documents.azure.com:443/dbs/mydb/colls")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(parts.Host, parts.Port)
	fmt.Println(parts.Path, parts.File)
	// Output:
	// myaccount.documents.azure.com 443
	// /dbs/mydb/ colls
}

func ExampleParsePath() {
	for _, p := range []string{"/dbs", "/dbs/mydb", "/dbs/mydb/colls"} {
		info, err := resource.ParsePath(p)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf("%s -> type=%s id=%q\n", p, info.ResourceType, info.ResourceID)
	}
	// Output:
	// /dbs -> type=dbs id=""
	// /dbs/mydb -> type=dbs id="/dbs/mydb"
	// /dbs/mydb/colls -> type=colls id="/dbs/mydb"
}
