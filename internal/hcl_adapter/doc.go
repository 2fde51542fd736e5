// Package hcl_adapter provides the HCL implementation of config.Loader.
//
// A configuration is one or more .hcl files, merged in the order they are
// found:
//
//	context = "."
//
//	entry "main" {
//	  import = "./src/index.js"
//	}
//
//	module {
//	  rule {
//	    test = "\\.svg$"
//	    type = "asset/resource"
//	    use "svgo-loader" {
//	      options = { multipass = true }
//	    }
//	  }
//	  parser {
//	    data_url_condition {
//	      max_size = 4096
//	    }
//	  }
//	}
//
//	resolve {
//	  extensions = [".ts", ".js"]
//	}
//
//	css {
//	  emit_js_stub = true
//	}
//
// A relative context is resolved against the directory of the file that
// sets it. Without one, the directory of the first file is used.
package hcl_adapter
