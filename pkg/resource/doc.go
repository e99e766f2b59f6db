// Package resource splits document-database endpoint URLs and REST paths
// into the pieces the request signer needs.
//
// The REST hierarchy alternates between feeds and items at every depth:
//
//	/dbs                      feed of databases      type=dbs    id=""
//	/dbs/mydb                 database item          type=dbs    id=/dbs/mydb
//	/dbs/mydb/colls           feed of collections    type=colls  id=/dbs/mydb
//	/dbs/mydb/colls/mycoll    collection item        type=colls  id=/dbs/mydb/colls/mycoll
package resource
